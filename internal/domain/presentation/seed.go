package presentation

// SeedPresentations returns the sample presentations used to initialise empty storage.
func SeedPresentations() []Presentation {
	return []Presentation{
		{
			ID:    "1",
			Title: Text{En: "Introduction to Data Science", Ar: "مقدمة في علم البيانات"},
			Description: &Text{
				En: "A brief overview of data science concepts.",
				Ar: "نظرة عامة موجزة عن مفاهيم علم البيانات.",
			},
			Type: TypeSlides,
			Slides: []Slide{
				{
					Title:   Text{En: "What is Data Science?", Ar: "ما هو علم البيانات؟"},
					Content: Text{En: "Extracting knowledge and insight from structured and unstructured data.", Ar: "استخراج المعرفة والرؤى من البيانات المنظمة وغير المنظمة."},
					Color:   "from-primary/80 to-primary",
				},
				{
					Title:   Text{En: "Key Techniques", Ar: "التقنيات الرئيسية"},
					Content: Text{En: "Statistical analysis, machine learning, natural language processing.", Ar: "التحليل الإحصائي، تعلم الآلة، معالجة اللغة الطبيعية."},
					Color:   "from-blue-500/80 to-blue-600",
				},
			},
			Date:         "2024-04-15",
			ThumbnailURL: "/images/data-science-thumbnail.png",
		},
		{
			ID:    "2",
			Title: Text{En: "Digital Marketing Strategies", Ar: "استراتيجيات التسويق الرقمي"},
			Description: &Text{
				En: "Effective strategies for digital marketing campaigns.",
				Ar: "استراتيجيات فعالة لحملات التسويق الرقمي.",
			},
			Type:         TypePDF,
			PDFURL:       "/presentations/digital-marketing.pdf",
			Date:         "2024-04-18",
			ThumbnailURL: "/images/digital-marketing-thumbnail.png",
		},
		{
			ID:    "3",
			Title: Text{En: "Health Informatics Overview", Ar: "نظرة عامة على المعلوماتية الصحية"},
			Description: &Text{
				En: "An introduction to health informatics and its applications.",
				Ar: "مقدمة في المعلوماتية الصحية وتطبيقاتها.",
			},
			Type: TypeSlides,
			Slides: []Slide{
				{
					Title:   Text{En: "What is Health Informatics?", Ar: "ما هي المعلوماتية الصحية؟"},
					Content: Text{En: "Health informatics is the intersection of healthcare, information science, and computer science.", Ar: "المعلوماتية الصحية هي تقاطع الرعاية الصحية وعلوم المعلومات وعلوم الحاسوب."},
					Color:   "from-primary/80 to-primary",
				},
				{
					Title:   Text{En: "Key Applications", Ar: "التطبيقات الرئيسية"},
					Content: Text{En: "Electronic Health Records, Clinical Decision Support Systems, Telemedicine", Ar: "السجلات الصحية الإلكترونية، أنظمة دعم القرار السريري، الطب عن بعد"},
					Color:   "from-emerald-500/80 to-emerald-600",
				},
			},
			Date:         "2024-04-20",
			ThumbnailURL: "/images/health-informatics-thumbnail.png",
		},
	}
}
