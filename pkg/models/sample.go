package models

// SampleResumeData returns a fully populated example resume in the raw
// wire shape. The preview endpoint renders it so the template-browsing UI
// can show realistic output, and tests use it as a known-good document.
func SampleResumeData() map[string]interface{} {
	return map[string]interface{}{
		"personal_info": map[string]interface{}{
			"name":     "Alex Johnson",
			"email":    "alex.johnson@email.com",
			"phone":    "+1 (555) 123-4567",
			"location": "San Francisco, CA",
			"linkedin": "https://linkedin.com/in/alexjohnson",
			"github":   "https://github.com/alexjohnson",
			"website":  "https://alexjohnson.dev",
		},
		"summary": "Full-stack software engineer with 5+ years of experience building scalable web applications. Specialized in React, Python, and cloud technologies. Passionate about creating user-centric solutions and mentoring junior developers.",
		"experience": []interface{}{
			map[string]interface{}{
				"position":   "Senior Software Engineer",
				"company":    "TechCorp Inc.",
				"location":   "San Francisco, CA",
				"start_date": "Jan 2021",
				"current":    true,
				"description": []interface{}{
					"Led development of microservices architecture serving 1M+ daily active users",
					"Reduced API response time by 40% through optimization and caching strategies",
					"Mentored team of 5 junior engineers, improving code quality and development speed",
					"Implemented CI/CD pipeline reducing deployment time from 2 hours to 15 minutes",
				},
				"achievements": []interface{}{
					"Received 'Outstanding Performance' award Q3 2023",
					"Open-sourced internal tool with 500+ GitHub stars",
				},
			},
			map[string]interface{}{
				"position":   "Software Engineer",
				"company":    "StartupXYZ",
				"location":   "Palo Alto, CA",
				"start_date": "Jun 2019",
				"end_date":   "Dec 2020",
				"description": []interface{}{
					"Built real-time chat application using WebSocket and React",
					"Developed RESTful APIs in Python/Django serving 50K+ requests per hour",
					"Collaborated with design team to implement pixel-perfect UI components",
				},
			},
		},
		"education": []interface{}{
			map[string]interface{}{
				"degree":          "Bachelor of Science",
				"field_of_study":  "Computer Science",
				"institution":     "Stanford University",
				"graduation_date": "May 2019",
				"gpa":             "3.85/4.0",
			},
		},
		"skills": []interface{}{
			map[string]interface{}{
				"category": "Languages",
				"items":    []interface{}{"Python", "JavaScript", "TypeScript", "Go", "SQL"},
			},
			map[string]interface{}{
				"category": "Frameworks & Libraries",
				"items":    []interface{}{"React", "Node.js", "FastAPI", "Django", "Next.js"},
			},
			map[string]interface{}{
				"category": "Tools & Technologies",
				"items":    []interface{}{"Git", "Docker", "Kubernetes", "AWS", "PostgreSQL", "Redis"},
			},
		},
		"projects": []interface{}{
			map[string]interface{}{
				"name":         "ResumeAI - AI-Powered Resume Builder",
				"description":  "Built full-stack application with React frontend and FastAPI backend. Deployed on AWS with Docker/Kubernetes. 10K+ users in first month.",
				"technologies": []interface{}{"React", "FastAPI", "Docker", "AWS", "PostgreSQL"},
				"url":          "https://github.com/alexjohnson/resumeai",
			},
			map[string]interface{}{
				"name":         "Task Manager Pro",
				"description":  "Developed collaborative task management tool with real-time updates using WebSocket. Used by 3 startups.",
				"technologies": []interface{}{"React", "Node.js", "Socket.io", "MongoDB"},
				"url":          "https://github.com/alexjohnson/taskmanager",
			},
		},
		"certifications": []interface{}{
			map[string]interface{}{
				"name":   "AWS Certified Solutions Architect - Associate",
				"issuer": "Amazon Web Services",
				"date":   "2023",
			},
			map[string]interface{}{
				"name":   "Google Cloud Professional Developer",
				"issuer": "Google Cloud",
				"date":   "2022",
			},
		},
		"awards": []interface{}{
			"Hackathon Winner - TechConf 2022 (1st place out of 200 teams)",
			"Dean's List - All semesters at Stanford University",
		},
		"languages": []interface{}{
			"English (Native)",
			"Spanish (Professional working proficiency)",
		},
	}
}

// SampleResume returns the normalized form of SampleResumeData.
func SampleResume() *ResumeDocument {
	return NormalizeResume(SampleResumeData())
}
