// Package roadmap builds the step-by-step career plan a user works through.
package roadmap

import (
	"fmt"
	"net/url"
)

type Resource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type Step struct {
	ID          int        `json:"id"`
	Emoji       string     `json:"emoji"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Resources   []Resource `json:"resources"`
	Completed   bool       `json:"completed"`
}

type Roadmap struct {
	Job   string `json:"job"`
	Steps []Step `json:"steps"`
}

// Step returns a pointer into r.Steps for id, or nil.
func (r *Roadmap) Step(id int) *Step {
	for i := range r.Steps {
		if r.Steps[i].ID == id {
			return &r.Steps[i]
		}
	}

	return nil
}

func (r Roadmap) Completed() int {
	n := 0

	for _, s := range r.Steps {
		if s.Completed {
			n++
		}
	}

	return n
}

// Progress is the rounded share of completed steps, 0 to 100.
func (r Roadmap) Progress() int {
	if len(r.Steps) == 0 {
		return 0
	}

	return (200*r.Completed() + len(r.Steps)) / (2 * len(r.Steps))
}

// Clone returns a deep copy so callers cannot mutate shared step slices.
func (r Roadmap) Clone() Roadmap {
	out := Roadmap{Job: r.Job, Steps: make([]Step, len(r.Steps))}

	for i, s := range r.Steps {
		s.Resources = append([]Resource(nil), s.Resources...)
		out.Steps[i] = s
	}

	return out
}

// Generate returns the default eight-step plan for job, all steps incomplete.
func Generate(job string) Roadmap {
	q := url.PathEscape(job)

	return Roadmap{
		Job: job,
		Steps: []Step{
			{
				ID:          1,
				Emoji:       "📚",
				Title:       "Learn the Fundamentals",
				Description: fmt.Sprintf("Start with the foundational knowledge for a career in %s. Focus on understanding key concepts, terminology, and basic skills.", job),
				Resources: []Resource{
					{Name: "Coursera Free Courses", URL: "https://www.coursera.org/courses?query=free"},
					{Name: "Khan Academy", URL: "https://www.khanacademy.org/"},
				},
			},
			{
				ID:          2,
				Emoji:       "🛠️",
				Title:       "Build Technical Skills",
				Description: fmt.Sprintf("Develop the specific technical skills required for %s. Practice with real-world examples and small projects.", job),
				Resources: []Resource{
					{Name: "YouTube Tutorials", URL: "https://www.youtube.com/results?search_query=learn+" + q},
					{Name: "GitHub Learning Lab", URL: "https://lab.github.com/"},
				},
			},
			{
				ID:          3,
				Emoji:       "🔍",
				Title:       "Research the Industry",
				Description: fmt.Sprintf("Understand the current trends, challenges, and opportunities in the %s field. Follow industry leaders and publications.", job),
				Resources: []Resource{
					{Name: "Medium Articles", URL: "https://medium.com/search?q=" + q},
					{Name: "LinkedIn Learning", URL: "https://www.linkedin.com/learning/"},
				},
			},
			{
				ID:          4,
				Emoji:       "📁",
				Title:       "Create Portfolio Projects",
				Description: fmt.Sprintf("Build real-world projects that showcase your %s skills. Focus on quality and solving actual problems in the field.", job),
				Resources: []Resource{
					{Name: "GitHub", URL: "https://github.com/"},
					{Name: "Behance", URL: "https://www.behance.net/"},
				},
			},
			{
				ID:          5,
				Emoji:       "🤝",
				Title:       "Network with Professionals",
				Description: fmt.Sprintf("Connect with experienced %s professionals. Attend industry events, join online communities, and participate in discussions.", job),
				Resources: []Resource{
					{Name: "LinkedIn", URL: "https://www.linkedin.com/"},
					{Name: "Meetup", URL: "https://www.meetup.com/"},
				},
			},
			{
				ID:          6,
				Emoji:       "📄",
				Title:       "Prepare Resume & Portfolio",
				Description: fmt.Sprintf("Create a professional resume and portfolio tailored for %s positions. Highlight your skills, projects, and experiences.", job),
				Resources: []Resource{
					{Name: "Resume.io", URL: "https://resume.io/"},
					{Name: "Canva Resume Templates", URL: "https://www.canva.com/resumes/templates/"},
				},
			},
			{
				ID:          7,
				Emoji:       "💼",
				Title:       "Apply for Jobs or Internships",
				Description: fmt.Sprintf("Start applying for entry-level %s positions or internships. Focus on companies that align with your career goals.", job),
				Resources: []Resource{
					{Name: "LinkedIn Jobs", URL: "https://www.linkedin.com/jobs/"},
					{Name: "Indeed", URL: "https://www.indeed.com/"},
				},
			},
			{
				ID:          8,
				Emoji:       "🚀",
				Title:       "Continuous Learning",
				Description: fmt.Sprintf("Never stop learning! Stay updated with the latest trends and advancements in the %s field. Pursue additional certifications if relevant.", job),
				Resources: []Resource{
					{Name: "Coursera Certifications", URL: "https://www.coursera.org/professional-certificates"},
					{Name: "edX Courses", URL: "https://www.edx.org/"},
				},
			},
		},
	}
}
