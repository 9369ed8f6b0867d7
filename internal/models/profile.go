package models

type Experience struct {
	ID               string `json:"_id,omitempty"`
	Title            string `json:"title" binding:"required"`
	CompanyName      string `json:"companyName" binding:"required"`
	Introduction     string `json:"introduction"`
	EmploymentType   string `json:"employmentType"`
	LocationMode     string `json:"locationMode,omitempty"`
	StartDate        string `json:"startDate" binding:"required"`
	EndDate          string `json:"endDate,omitempty"`
	CurrentlyWorking bool   `json:"currentlyWorking"`
	Country          string `json:"country"`
	City             string `json:"city"`
}

type Education struct {
	ID          string `json:"_id,omitempty"`
	Institution string `json:"institution" binding:"required"`
	Degree      string `json:"degree" binding:"required"`
	StartDate   string `json:"startDate" binding:"required"`
	EndDate     string `json:"endDate,omitempty"`
	Current     bool   `json:"current"`
}

type Skill struct {
	ID       string `json:"_id,omitempty"`
	Category string `json:"category" binding:"required"`
	Name     string `json:"name" binding:"required"`
}

type SocialLinks struct {
	Twitter   string `json:"twitter,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	GitHub    string `json:"github,omitempty"`
	Dribbble  string `json:"dribbble,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Behance   string `json:"behance,omitempty"`
}

type StyleColors struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Background string `json:"background"`
}

type StyleConfig struct {
	Font         string      `json:"font"`
	HeadingStyle string      `json:"headingStyle"`
	Colors       StyleColors `json:"colors"`
	ButtonStyle  string      `json:"buttonStyle"`
	Spacing      string      `json:"spacing"`
}

type ProfessionalInfo struct {
	Title        string `json:"title"`
	CompanyName  string `json:"companyName"`
	Introduction string `json:"introduction"`
}

type Profile struct {
	DisplayName string       `json:"displayName"`
	Bio         string       `json:"bio"`
	Experience  []Experience `json:"experience"`
	Education   []Education  `json:"education"`
	Skills      []Skill      `json:"skills"`
	SocialLinks *SocialLinks `json:"socialLinks,omitempty"`
	CaseStudies []CaseStudy  `json:"caseStudies"`
}

type UserInfo struct {
	ID               string           `json:"_id"`
	FirebaseUID      string           `json:"firebaseUid,omitempty"`
	Email            string           `json:"email"`
	Username         string           `json:"username"`
	AuthProvider     []string         `json:"authProvider,omitempty"`
	PhotoURL         string           `json:"firebasePhotoURL,omitempty"`
	EmailVerified    bool             `json:"emailVerified"`
	Profile          Profile          `json:"profile"`
	ProfessionalInfo ProfessionalInfo `json:"professionalInfo"`
	StyleConfig      *StyleConfig     `json:"styleConfig,omitempty"`
	Role             string           `json:"role"`
	Verified         bool             `json:"verified"`
	ResumeURL        string           `json:"resumeURL,omitempty"`
	CreatedAt        string           `json:"createdAt,omitempty"`
	UpdatedAt        string           `json:"updatedAt,omitempty"`
}

// ProfileUpdate is the profileData document of POST /users/update/profile.
type ProfileUpdate struct {
	ProfessionalInfo ProfessionalInfo `json:"professionalInfo"`
	Profile          struct {
		DisplayName string `json:"displayName"`
		Bio         string `json:"bio"`
	} `json:"profile"`
}
