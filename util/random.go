package util

import (
	"fmt"
	"math/rand"
	"strings"
)

const alpha = "abcdefghjklmnopqrstuvwxyz"

// RandomInt generates a random integer between min and max
func RandomInt(min, max int64) int64 {
	if max < min {
		min, max = max, min // swap if needed
	}
	return rand.Int63n(max-min+1) + min
}

// RandomString generates a random string of length n
func RandomString(n int) string {
	var sb strings.Builder
	k := len(alpha)

	for i := 0; i < n; i++ {
		c := alpha[rand.Intn(k)]
		sb.WriteByte(c)
	}

	return sb.String()
}

// RandomName generates a random name which can be used for anything
func RandomName() string {
	return RandomString(6)
}

// RandomEmail generates a random email
func RandomEmail() string {
	return RandomString(7) + "@" + RandomString(6) + ".com"
}

// RandomLocation returns one of a few city names
func RandomLocation() string {
	options := []string{"Ahmedabad", "Pune", "Bengaluru", "Remote", "Berlin", "Toronto"}
	return options[rand.Intn(len(options))]
}

// RandomApplicationStatus returns a random kanban column:
// "applied", "interview", "selected" or "rejected"
func RandomApplicationStatus() string {
	statuses := []string{"applied", "interview", "selected", "rejected"}
	return statuses[rand.Intn(len(statuses))]
}

var skillPool = []string{
	"Python", "Django", "React", "Go", "PostgreSQL", "Docker", "Kubernetes",
	"TypeScript", "Figma", "Sketch", "C++", "Node.js", "AWS", "GraphQL",
}

// RandomSkills returns n distinct skills from a fixed pool joined the way
// users type them into a form: comma separated, mixed with line breaks.
func RandomSkills(n int) string {
	if n > len(skillPool) {
		n = len(skillPool)
	}

	picked := rand.Perm(len(skillPool))[:n]

	var sb strings.Builder
	for i, idx := range picked {
		if i > 0 {
			if rand.Intn(2) == 0 {
				sb.WriteString(", ")
			} else {
				sb.WriteString("\n")
			}
		}
		sb.WriteString(skillPool[idx])
	}
	return sb.String()
}

// RandomJobTitle generates a realistic job title like "Senior Backend Engineer"
func RandomJobTitle() string {
	levels := []string{"Junior", "Senior", "Lead", "Staff", "Intern"}
	areas := []string{"Backend", "Frontend", "Data", "Platform", "Mobile", "Design"}
	roles := []string{"Engineer", "Developer", "Analyst", "Designer"}

	return fmt.Sprintf("%s %s %s",
		levels[rand.Intn(len(levels))],
		areas[rand.Intn(len(areas))],
		roles[rand.Intn(len(roles))],
	)
}

// RandomDescription returns a short job description
func RandomDescription() string {
	verbs := []string{
		"Build", "Design", "Maintain", "Scale", "Ship", "Own",
	}

	nouns := []string{
		"customer-facing APIs", "our hiring dashboard", "data pipelines",
		"the mobile app", "internal tooling", "the design system",
	}

	return fmt.Sprintf("%s %s with a small product team.",
		verbs[rand.Intn(len(verbs))],
		nouns[rand.Intn(len(nouns))],
	)
}
