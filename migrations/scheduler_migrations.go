package migrations

import "gorm.io/gorm"

func GetSchedulerMigrations() []MigrationDefinition {
	return []MigrationDefinition{
		{
			Name: "2025_01_02_000000_create_scheduler_tables",
			Up: func(db *gorm.DB) error {
				// Opposing team profiles
				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS scheduler_team (
						id BIGSERIAL PRIMARY KEY,
						name VARCHAR(255) NOT NULL,
						skill INTEGER NULL CHECK (skill BETWEEN 1 AND 10),
						notes TEXT DEFAULT '',
						created TIMESTAMP DEFAULT NOW()
					);
					CREATE INDEX IF NOT EXISTS idx_scheduler_team_name ON scheduler_team(name);
				`).Error; err != nil {
					return err
				}

				// Matches; losing the opponent keeps the match alive
				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS scheduler_match (
						id BIGSERIAL PRIMARY KEY,
						title VARCHAR(255) NOT NULL,
						opponent_id BIGINT NULL REFERENCES scheduler_team(id) ON DELETE SET NULL,
						score_opponent INTEGER NULL CHECK (score_opponent >= 0),
						score INTEGER NULL CHECK (score >= 0),
						default_match_date TIMESTAMP NOT NULL,
						created TIMESTAMP DEFAULT NOW()
					);
					CREATE INDEX IF NOT EXISTS idx_scheduler_match_title ON scheduler_match(title);
					CREATE INDEX IF NOT EXISTS idx_scheduler_match_opponent_id ON scheduler_match(opponent_id);
				`).Error; err != nil {
					return err
				}

				// One calendar slot per match; the unique index is the
				// authoritative backstop for the create-if-absent race
				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS scheduler_appointment (
						id BIGSERIAL PRIMARY KEY,
						match_date TIMESTAMP NULL,
						match_id BIGINT NOT NULL UNIQUE REFERENCES scheduler_match(id) ON DELETE CASCADE,
						created TIMESTAMP DEFAULT NOW()
					);
					CREATE INDEX IF NOT EXISTS idx_scheduler_appointment_match_date ON scheduler_appointment(match_date);
				`).Error; err != nil {
					return err
				}

				// Availability windows; CHECK mirrors the write-path rule
				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS scheduler_proposition (
						id BIGSERIAL PRIMARY KEY,
						user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
						date DATE NOT NULL,
						start_time TIME NOT NULL,
						end_time TIME NOT NULL,
						created TIMESTAMP DEFAULT NOW(),
						CHECK (start_time < end_time)
					);
					CREATE INDEX IF NOT EXISTS idx_scheduler_proposition_user_id ON scheduler_proposition(user_id);
					CREATE INDEX IF NOT EXISTS idx_scheduler_proposition_date ON scheduler_proposition(date);
				`).Error; err != nil {
					return err
				}

				return nil
			},
			Down: func(db *gorm.DB) error {
				// Drop in reverse order because of foreign keys
				if err := db.Exec("DROP TABLE IF EXISTS scheduler_proposition CASCADE").Error; err != nil {
					return err
				}
				if err := db.Exec("DROP TABLE IF EXISTS scheduler_appointment CASCADE").Error; err != nil {
					return err
				}
				if err := db.Exec("DROP TABLE IF EXISTS scheduler_match CASCADE").Error; err != nil {
					return err
				}
				return db.Exec("DROP TABLE IF EXISTS scheduler_team CASCADE").Error
			},
		},
	}
}
