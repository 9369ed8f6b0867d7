package database

// Draft queries. state holds the whole draft document as JSON; the other
// columns are copies kept for listing and expiry.
const (
	UpsertDraft = `
		INSERT INTO case_study_drafts (id, user_id, mode, case_study_id, step, state, created_at, updated_at, expires_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			step = EXCLUDED.step,
			state = EXCLUDED.state,
			updated_at = EXCLUDED.updated_at,
			expires_at = EXCLUDED.expires_at
	`

	SelectDraft = `
		SELECT state FROM case_study_drafts
		WHERE id = $1 AND expires_at > NOW()
	`

	SelectDraftForUpdate = `
		SELECT state FROM case_study_drafts
		WHERE id = $1 AND expires_at > NOW()
		FOR UPDATE
	`

	DeleteDraft = `DELETE FROM case_study_drafts WHERE id = $1`

	DeleteExpiredDrafts = `
		DELETE FROM case_study_drafts WHERE expires_at <= NOW()
		RETURNING id, user_id
	`
)
