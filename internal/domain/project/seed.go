package project

const placeholderImage = "/placeholder.svg?height=300&width=500"

// SeedProjects returns the sample projects used to initialise empty storage.
// A fresh slice is returned on every call.
func SeedProjects() []Project {
	return []Project{
		{
			ID:           "1",
			Title:        "Health Data Analysis Dashboard",
			Description:  "A Python-based dashboard for analyzing health metrics and patient data for healthcare facilities.",
			Category:     "Data Analysis",
			Status:       StatusCompleted,
			Technologies: []string{"Python", "Pandas", "Dash"},
			StartDate:    "2023-09-15",
			EndDate:      "2024-01-20",
			Team:         []string{"Mostafa Emad", "Ahmed Hassan"},
			ImageURL:     placeholderImage,
		},
		{
			ID:           "2",
			Title:        "Hospital Management System",
			Description:  "A comprehensive system for managing hospital resources, staff scheduling, and patient records.",
			Category:     "Health Informatics",
			Status:       StatusInProgress,
			Technologies: []string{"SQL", "Python", "Django"},
			StartDate:    "2024-02-10",
			Team:         []string{"Mostafa Emad", "Sara Ahmed", "Mohamed Ali"},
			ImageURL:     placeholderImage,
		},
		{
			ID:           "3",
			Title:        "Health Sciences Social Media Campaign",
			Description:  "Designed and executed a digital marketing campaign for Faculty of Health Sciences events.",
			Category:     "Digital Marketing",
			Status:       StatusPlanning,
			Technologies: []string{"Digital Marketing", "Social Media", "Analytics"},
			StartDate:    "2024-04-01",
			Team:         []string{"Mostafa Emad"},
			ImageURL:     placeholderImage,
		},
		{
			ID:           "4",
			Title:        "Student Union Web Portal",
			Description:  "Developed a web portal for Faculty of Health Sciences Student Union to manage events and activities.",
			Category:     "Web Development",
			Status:       StatusOnHold,
			Technologies: []string{"HTML/CSS", "JavaScript", "PHP"},
			StartDate:    "2023-11-05",
			EndDate:      "2024-03-15",
			Team:         []string{"Mostafa Emad", "Laila Ibrahim"},
			ImageURL:     placeholderImage,
		},
	}
}
