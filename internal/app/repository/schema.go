package repository

func schemaFor(driverName string) []string {
	turnID := "INTEGER PRIMARY KEY AUTOINCREMENT"
	if driverName == "postgres" {
		turnID = "BIGSERIAL PRIMARY KEY"
	}

	return []string{
		`CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			company TEXT NOT NULL,
			position TEXT NOT NULL,
			difficulty TEXT NOT NULL,
			question_limit INTEGER NOT NULL,
			questions_answered INTEGER NOT NULL DEFAULT 0,
			transcript TEXT NOT NULL,
			revision BIGINT NOT NULL DEFAULT 1,
			created_at BIGINT NOT NULL,
			updated_at BIGINT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_created_at ON sessions(created_at)`,
		`CREATE TABLE IF NOT EXISTS turns (
			id ` + turnID + `,
			session_id TEXT NOT NULL REFERENCES sessions(id),
			question TEXT NOT NULL,
			answer TEXT NOT NULL,
			technical_score INTEGER NOT NULL,
			clarity_score INTEGER NOT NULL,
			structure_score INTEGER NOT NULL,
			confidence_score INTEGER NOT NULL,
			professionalism_score INTEGER NOT NULL,
			strengths TEXT NOT NULL,
			weaknesses TEXT NOT NULL,
			improvement_plan TEXT NOT NULL,
			coach_feedback TEXT NOT NULL,
			created_at BIGINT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_turns_session_id ON turns(session_id)`,
	}
}
