package mock

import (
	"time"

	"github.com/rdSoftInc/DevConnect/internal/models"
	"github.com/rdSoftInc/DevConnect/internal/services"
)

// Password shared by every demo account
const Password = "password"

// DemoUser a demo account with the profile and posts created for it
type DemoUser struct {
	Account    services.RegisterInput
	Profile    services.ProfileInput
	Experience []models.Experience
	Education  []models.Education
	Posts      []string
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func datePtr(year int, month time.Month, day int) *time.Time {
	t := date(year, month, day)
	return &t
}

// Users demo accounts
var Users = []DemoUser{
	{
		Account: services.RegisterInput{
			Name:     "John Doe",
			Email:    "john@example.com",
			Password: Password,
		},
		Profile: services.ProfileInput{
			Company:        "Acme Corp",
			Website:        "https://johndoe.dev",
			Location:       "Boston, MA",
			Bio:            "Backend developer who likes databases a little too much",
			Status:         "Senior Developer",
			GithubUsername: "johndoe",
			Skills:         []string{"Go", "PostgreSQL", "Docker", "Kubernetes"},
			Social: models.Social{
				Twitter:  "https://twitter.com/johndoe",
				LinkedIn: "https://linkedin.com/in/johndoe",
			},
		},
		Experience: []models.Experience{
			{
				Title:       "Junior Developer",
				Company:     "Initech",
				Location:    "Austin, TX",
				From:        date(2016, time.June, 1),
				To:          datePtr(2019, time.August, 31),
				Description: "Maintained the TPS report pipeline",
			},
			{
				Title:    "Senior Developer",
				Company:  "Acme Corp",
				Location: "Boston, MA",
				From:     date(2019, time.September, 1),
				Current:  true,
			},
		},
		Education: []models.Education{
			{
				School:       "State University",
				Degree:       "BSc",
				FieldOfStudy: "Computer Science",
				From:         date(2012, time.September, 1),
				To:           datePtr(2016, time.May, 31),
			},
		},
		Posts: []string{
			"Just moved our last service off the monolith. Ask me anything.",
			"Reminder: your migrations should be reversible.",
		},
	},
	{
		Account: services.RegisterInput{
			Name:     "Jane Smith",
			Email:    "jane@example.com",
			Password: Password,
		},
		Profile: services.ProfileInput{
			Company:  "Freelance",
			Location: "Lisbon, Portugal",
			Bio:      "Frontend developer and occasional speaker",
			Status:   "Developer",
			Skills:   []string{"TypeScript", "React", "CSS"},
			Social: models.Social{
				YouTube:   "https://youtube.com/@janesmith",
				Instagram: "https://instagram.com/janesmith",
			},
		},
		Education: []models.Education{
			{
				School:       "Design Academy",
				Degree:       "BA",
				FieldOfStudy: "Interaction Design",
				From:         date(2014, time.September, 1),
				To:           datePtr(2017, time.June, 30),
			},
		},
		Posts: []string{
			"Looking for people to pair on an accessibility audit tool.",
		},
	},
}
