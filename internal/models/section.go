package models

type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeTextarea FieldType = "textarea"
	FieldTypePicture  FieldType = "picture"
	FieldTypeCheckbox FieldType = "checkbox"
	FieldTypeNumber   FieldType = "number"
)

// Field is a server-defined input descriptor. Immutable on the client.
type Field struct {
	ID         string    `json:"_id" yaml:"id"`
	Name       string    `json:"name" yaml:"name"`
	Label      string    `json:"label" yaml:"label"`
	Type       FieldType `json:"type" yaml:"type"`
	Required   bool      `json:"required" yaml:"required"`
	Order      int       `json:"order" yaml:"order"`
	Repeatable bool      `json:"repeatable" yaml:"repeatable"`
	Options    []string  `json:"options,omitempty" yaml:"options,omitempty"`
	SubFields  []Field   `json:"subFields,omitempty" yaml:"subFields,omitempty"`
}

type Section struct {
	ID     string  `json:"_id"`
	Name   string  `json:"section"`
	Order  int     `json:"order"`
	Fields []Field `json:"fields"`
}

// FindField returns the field with the given id, or false.
func (s Section) FindField(fieldID string) (Field, bool) {
	for _, f := range s.Fields {
		if f.ID == fieldID {
			return f, true
		}
	}
	return Field{}, false
}

// SelectedField is a chosen Field denormalized with its owning section, so
// step 2 can render and submit without the configuration.
type SelectedField struct {
	FieldID     string    `json:"fieldId" yaml:"fieldId"`
	FieldName   string    `json:"fieldName" yaml:"fieldName"`
	FieldLabel  string    `json:"fieldLabel" yaml:"fieldLabel"`
	FieldType   FieldType `json:"fieldType" yaml:"fieldType"`
	SectionID   string    `json:"sectionId" yaml:"sectionId"`
	SectionName string    `json:"sectionName" yaml:"sectionName"`
	Required    bool      `json:"required" yaml:"required"`
	Order       int       `json:"order" yaml:"order"`
	Selected    bool      `json:"selected" yaml:"selected"`
}

type Configuration struct {
	Sections []Section `json:"sections"`
	Tags     []string  `json:"tags"`
}

type ConfigurationResponse struct {
	Success bool           `json:"success"`
	Data    *Configuration `json:"data,omitempty"`
	Error   string         `json:"error,omitempty"`
}
