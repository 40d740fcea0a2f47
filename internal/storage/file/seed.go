package file

import (
	"github.com/honeycarbs/hiring-mcp/internal/domain"
	"github.com/honeycarbs/hiring-mcp/internal/domain/profile"
)

// Seed returns the two built-in sample candidates
func Seed() profile.StaticSource {
	return profile.StaticSource{
		Label: "seed",
		Profiles: []domain.CandidateProfile{
			{
				ID:              "john",
				Name:            "John",
				Title:           "Software Developer",
				Department:      "Engineering",
				Skills:          []string{"Python", "JavaScript", "React", "Docker", "Git"},
				ExperienceYears: 5,
				ProfileSummary:  "Software developer with five years of experience building web applications in Python and React, shipping containerized services with Docker.",
			},
			{
				ID:              "anna",
				Name:            "Anna",
				Title:           "Marketing Specialist",
				Department:      "Marketing",
				Skills:          []string{"Content Marketing", "Social Media", "SEO", "Analytics", "Campaign Management"},
				ExperienceYears: 3,
				ProfileSummary:  "Marketing specialist with three years of experience running content, social media and SEO campaigns backed by analytics.",
			},
		},
	}
}
