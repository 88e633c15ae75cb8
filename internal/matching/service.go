package matching

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
)

const maxCareerSuggestions = 5

var ErrInvalidMapping = errors.New("skill and career are required")

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=matching
type Repository interface {
	// LearnedCareers returns user-taught skill to career mappings, keyed by lowercased skill.
	LearnedCareers(ctx context.Context) (map[string][]string, error)
	SaveLearned(ctx context.Context, learned map[string][]string) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

var skillsByJob = []struct {
	job    string
	skills []string
}{
	{"web developer", []string{"HTML", "CSS", "JavaScript", "React", "Node.js", "Git"}},
	{"data scientist", []string{"Python", "R", "SQL", "Machine Learning", "Statistics", "Data Visualization"}},
	{"ux designer", []string{"User Research", "Wireframing", "Prototyping", "Figma", "Adobe XD", "UI Design"}},
	{"product manager", []string{"Agile Methodology", "User Stories", "Roadmapping", "Analytics", "A/B Testing"}},
	{"software engineer", []string{"Java", "Python", "C++", "Data Structures", "Algorithms", "System Design"}},
}

var generalSkills = []string{
	"Communication",
	"Problem Solving",
	"Critical Thinking",
	"Time Management",
	"Project Management",
	"Microsoft Office Suite",
}

var careersBySkill = map[string][]string{
	"html":             {"Web Developer", "Frontend Developer", "UI Developer"},
	"css":              {"Web Developer", "Frontend Developer", "UI Developer"},
	"javascript":       {"Web Developer", "Frontend Developer", "Full Stack Developer"},
	"react":            {"Frontend Developer", "React Developer", "UI Engineer"},
	"node.js":          {"Backend Developer", "Full Stack Developer", "API Developer"},
	"python":           {"Data Scientist", "Backend Developer", "Machine Learning Engineer"},
	"r":                {"Data Scientist", "Data Analyst", "Quantitative Analyst"},
	"sql":              {"Data Analyst", "Database Administrator", "Business Intelligence Analyst"},
	"machine learning": {"Machine Learning Engineer", "AI Researcher", "Data Scientist"},
	"statistics":       {"Data Scientist", "Statistician", "Research Analyst"},
	"user research":    {"UX Researcher", "UX Designer", "Product Designer"},
	"wireframing":      {"UX Designer", "UI Designer", "Product Designer"},
	"figma":            {"UI Designer", "Product Designer", "UX Designer"},
	"java":             {"Software Engineer", "Backend Developer", "Android Developer"},
	"communication":    {"Project Manager", "Product Manager", "Customer Success Manager"},
	"problem solving":  {"Software Engineer", "Data Scientist", "Business Analyst"},
}

// SuggestSkills returns the skills usually asked of job. An exact title wins over
// a partial one. Unknown and blank titles get a general professional set.
func (s *Service) SuggestSkills(job string) []string {
	title := strings.ToLower(strings.TrimSpace(job))

	for _, e := range skillsByJob {
		if e.job == title {
			return slices.Clone(e.skills)
		}
	}

	if title != "" {
		for _, e := range skillsByJob {
			if strings.Contains(title, e.job) || strings.Contains(e.job, title) {
				return slices.Clone(e.skills)
			}
		}
	}

	return slices.Clone(generalSkills)
}

// SuggestCareers ranks careers by how many of skills point at them and returns
// at most five. Ties keep the order in which careers were first reached.
func (s *Service) SuggestCareers(ctx context.Context, skills []string) ([]string, error) {
	if len(skills) == 0 {
		return nil, nil
	}

	learned, err := s.repo.LearnedCareers(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading learned careers: %w", err)
	}

	type ranked struct {
		career string
		count  int
	}

	var order []ranked

	index := map[string]int{}

	for _, skill := range skills {
		key := strings.ToLower(strings.TrimSpace(skill))

		careers := append(slices.Clone(careersBySkill[key]), learned[key]...)
		for _, c := range careers {
			if i, ok := index[c]; ok {
				order[i].count++
				continue
			}

			index[c] = len(order)
			order = append(order, ranked{career: c, count: 1})
		}
	}

	slices.SortStableFunc(order, func(a, b ranked) int {
		return cmp.Compare(b.count, a.count)
	})

	out := make([]string, 0, min(len(order), maxCareerSuggestions))
	for _, r := range order[:min(len(order), maxCareerSuggestions)] {
		out = append(out, r.career)
	}

	return out, nil
}

// Learn remembers that skill points at career for future suggestions.
func (s *Service) Learn(ctx context.Context, skill, career string) error {
	key := strings.ToLower(strings.TrimSpace(skill))
	career = strings.TrimSpace(career)

	if key == "" || career == "" {
		return ErrInvalidMapping
	}

	learned, err := s.repo.LearnedCareers(ctx)
	if err != nil {
		return fmt.Errorf("loading learned careers: %w", err)
	}

	if slices.Contains(learned[key], career) || slices.Contains(careersBySkill[key], career) {
		return nil
	}

	if learned == nil {
		learned = map[string][]string{}
	}

	learned[key] = append(learned[key], career)

	return s.repo.SaveLearned(ctx, learned)
}
