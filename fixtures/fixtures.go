package fixtures

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	authModels "auth/models"
	authUtils "auth/utils"
	"scheduler/models"

	"gorm.io/gorm"
)

type Fixtures struct {
	db *gorm.DB
}

func NewFixtures(db *gorm.DB) *Fixtures {
	return &Fixtures{db: db}
}

// GenerateTestData creates users, opposing teams, matches with their
// calendar slots, and availability propositions.
func (f *Fixtures) GenerateTestData() error {
	log.Println("Starting fixtures generation...")

	users, err := f.generateUsers()
	if err != nil {
		return fmt.Errorf("failed to generate users: %w", err)
	}

	teams, err := f.generateTeams()
	if err != nil {
		return fmt.Errorf("failed to generate teams: %w", err)
	}

	matches, err := f.generateMatches(teams)
	if err != nil {
		return fmt.Errorf("failed to generate matches: %w", err)
	}

	propositions, err := f.generatePropositions(users)
	if err != nil {
		return fmt.Errorf("failed to generate propositions: %w", err)
	}

	log.Println("Fixtures generated successfully!")
	log.Printf("Created %d users, %d teams, %d matches and %d propositions", len(users), len(teams), len(matches), len(propositions))
	return nil
}

func (f *Fixtures) generateUsers() ([]authModels.User, error) {
	usernames := []string{
		"alexandre", "marie", "julien", "sophie", "thomas",
		"camille", "nicolas", "laura",
	}

	var users []authModels.User

	for i, username := range usernames {
		hashedPassword, err := authUtils.HashPassword("password123")
		if err != nil {
			return nil, err
		}

		roles := authModels.GetDefaultRoles()
		if i == 0 {
			// First account doubles as the admin
			roles = append(roles, authModels.RoleAdmin)
		}

		user := authModels.User{
			ID:       uint(i + 1), // #nosec G115 -- Force IDs 1, 2, 3, ...
			Email:    fmt.Sprintf("%s@team-scheduler.fr", username),
			Username: username,
			Password: hashedPassword,
			Enabled:  true,
			Roles:    roles,
		}

		if err := f.db.Create(&user).Error; err != nil {
			return nil, err
		}

		users = append(users, user)
		log.Printf("Created user: %s (ID: %d)", username, user.ID)
	}

	return users, nil
}

func (f *Fixtures) generateTeams() ([]models.Team, error) {
	skill := func(v int) *int { return &v }

	teamDefs := []models.Team{
		{Name: "Hawks", Skill: skill(8), Notes: "Strong defense, weak on counter-attacks"},
		{Name: "Falcons", Skill: skill(6), Notes: "Fast wingers"},
		{Name: "Bears", Skill: skill(4), Notes: ""},
		{Name: "Wolves", Skill: skill(9), Notes: "Last season's champions"},
		{Name: "Otters", Skill: nil, Notes: "New club, not rated yet"},
		{Name: "Ravens", Skill: skill(5), Notes: ""},
	}

	var teams []models.Team

	for _, def := range teamDefs {
		team := def
		if err := f.db.Create(&team).Error; err != nil {
			return nil, err
		}
		teams = append(teams, team)
		log.Printf("Created team: %s (ID: %d)", team.Name, team.ID)
	}

	return teams, nil
}

func (f *Fixtures) generateMatches(teams []models.Team) ([]models.Match, error) {
	now := time.Now()

	type matchDef struct {
		title     string
		teamIndex int // -1 for no opponent yet
		daysAway  int
		scheduled bool
		score     *int
		scoreOpp  *int
	}

	pts := func(v int) *int { return &v }

	matchDefs := []matchDef{
		{title: "Season opener", teamIndex: 0, daysAway: -21, scheduled: true, score: pts(3), scoreOpp: pts(1)},
		{title: "Friendly rematch", teamIndex: 1, daysAway: -7, scheduled: true, score: pts(2), scoreOpp: pts(2)},
		{title: "Quarter final", teamIndex: 3, daysAway: 7, scheduled: true},
		{title: "Semi final", teamIndex: 5, daysAway: 14, scheduled: false},
		{title: "Finals", teamIndex: -1, daysAway: 28, scheduled: false},
	}

	var matches []models.Match

	for _, def := range matchDefs {
		defaultDate := now.AddDate(0, 0, def.daysAway).Add(time.Duration(18+rand.Intn(3)) * time.Hour) // #nosec G404

		match := models.Match{
			Title:            def.title,
			DefaultMatchDate: defaultDate,
			Score:            def.score,
			ScoreOpponent:    def.scoreOpp,
		}
		if def.teamIndex >= 0 && def.teamIndex < len(teams) {
			match.OpponentID = &teams[def.teamIndex].ID
		}

		if err := f.db.Create(&match).Error; err != nil {
			return nil, err
		}

		// Every match owns exactly one calendar slot
		appointment := models.Appointment{MatchID: match.ID}
		if def.scheduled {
			appointment.MatchDate = &defaultDate
		}
		if err := f.db.Create(&appointment).Error; err != nil {
			return nil, err
		}

		matches = append(matches, match)
		log.Printf("Created match: %s (ID: %d, appointment ID: %d)", match.Title, match.ID, appointment.ID)
	}

	return matches, nil
}

func (f *Fixtures) generatePropositions(users []authModels.User) ([]models.Proposition, error) {
	var propositions []models.Proposition

	now := time.Now()

	// Each user offers 2-4 availability windows over the coming two weeks
	for _, user := range users {
		count := 2 + rand.Intn(3) // #nosec G404

		for i := 0; i < count; i++ {
			day := now.AddDate(0, 0, 1+rand.Intn(14)) // #nosec G404
			startHour := 9 + rand.Intn(9)             // #nosec G404
			duration := 1 + rand.Intn(3)              // #nosec G404

			proposition := models.Proposition{
				UserID:    user.ID,
				Date:      models.NewDateOnly(day.Year(), day.Month(), day.Day()),
				StartTime: models.NewTimeOfDay(startHour, 0, 0),
				EndTime:   models.NewTimeOfDay(startHour+duration, 0, 0),
			}

			if err := f.db.Create(&proposition).Error; err != nil {
				return nil, err
			}

			propositions = append(propositions, proposition)
		}
	}

	log.Printf("Created %d propositions", len(propositions))
	return propositions, nil
}

// ClearAllData removes all fixture data
func (f *Fixtures) ClearAllData() error {
	log.Println("Clearing all fixture data...")

	// Delete in correct order due to foreign key constraints
	tables := []interface{}{
		&models.Proposition{},
		&models.Appointment{},
		&models.Match{},
		&models.Team{},
		&authModels.RefreshToken{},
		&authModels.User{},
	}

	for _, table := range tables {
		if err := f.db.Unscoped().Where("1 = 1").Delete(table).Error; err != nil {
			return fmt.Errorf("failed to clear table %T: %w", table, err)
		}
	}

	// Reset auto-increment sequences to start from 1
	sequences := []string{
		"ALTER SEQUENCE users_id_seq RESTART WITH 1",
		"ALTER SEQUENCE refresh_tokens_id_seq RESTART WITH 1",
		"ALTER SEQUENCE scheduler_team_id_seq RESTART WITH 1",
		"ALTER SEQUENCE scheduler_match_id_seq RESTART WITH 1",
		"ALTER SEQUENCE scheduler_appointment_id_seq RESTART WITH 1",
		"ALTER SEQUENCE scheduler_proposition_id_seq RESTART WITH 1",
	}

	for _, seq := range sequences {
		f.db.Exec(seq)
	}

	log.Println("All fixture data cleared!")
	return nil
}
