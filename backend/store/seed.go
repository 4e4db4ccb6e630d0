package store

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/contatonovatek-coder/Novatek-Aulas/backend/models"
)

// Bootstrap administrator credentials. The password is hashed at seed time.
const (
	SeedAdminEmail    = "admin@novatek.com"
	SeedAdminPassword = "admin123"
)

// seedDocument builds the initial document: the bootstrap admin account and
// the fixed course catalog. Every user-generated collection starts empty.
func seedDocument() *models.Document {
	now := time.Now()
	hash, _ := bcrypt.GenerateFromPassword([]byte(SeedAdminPassword), bcrypt.DefaultCost)

	doc := &models.Document{
		Users: []models.User{
			{
				ID:           1,
				Name:         "Administrador",
				Email:        SeedAdminEmail,
				PasswordHash: string(hash),
				Role:         models.RoleAdmin,
				Plan:         "senior",
				Status:       models.StatusActive,
				Avatar:       "https://i.pravatar.cc/150?img=60",
				JoinDate:     now,
				LastLogin:    now,
				Preferences: models.Preferences{
					Theme:         "light",
					Notifications: true,
					Emails:        true,
				},
			},
		},
		Courses:       seedCourses(),
		Lessons:       seedLessons(),
		Payments:      []models.Payment{},
		Subscriptions: []models.Subscription{},
		Certificates:  []models.Certificate{},
		Notifications: []models.Notification{},
		UserProgress:  []models.UserProgress{},
		Categories: []models.Category{
			{ID: 1, Name: "Frontend", Icon: "fas fa-code", Color: "#4F46E5"},
			{ID: 2, Name: "Backend", Icon: "fas fa-server", Color: "#8B5CF6"},
			{ID: 3, Name: "Full Stack", Icon: "fas fa-layer-group", Color: "#10B981"},
			{ID: 4, Name: "Mobile", Icon: "fas fa-mobile-alt", Color: "#EF4444"},
			{ID: 5, Name: "Data Science", Icon: "fas fa-chart-line", Color: "#3B82F6"},
			{ID: 6, Name: "DevOps", Icon: "fas fa-cloud", Color: "#F59E0B"},
		},
		Instructors: []models.Instructor{
			{ID: 1, Name: "Carlos Mendes", Role: "Senior Frontend Engineer", Avatar: "https://i.pravatar.cc/150?img=1"},
			{ID: 2, Name: "Ana Costa", Role: "React Specialist", Avatar: "https://i.pravatar.cc/150?img=5"},
			{ID: 3, Name: "Roberto Alves", Role: "Backend Architect", Avatar: "https://i.pravatar.cc/150?img=8"},
			{ID: 4, Name: "Patrícia Lima", Role: "UI/UX Designer", Avatar: "https://i.pravatar.cc/150?img=11"},
		},
	}

	doc.AdminStats = models.AdminStats{
		TotalUsers:       len(doc.Users),
		TotalCourses:     len(doc.Courses),
		RecentActivities: []models.Activity{},
	}

	return doc
}

func seedCourses() []models.Course {
	return []models.Course{
		{
			ID:              1,
			Title:           "JavaScript Moderno - Do Zero ao Avançado",
			Description:     "Domine JavaScript com ES6+, async/await, promises, e construa aplicações reais.",
			FullDescription: "Neste curso você aprenderá JavaScript do absoluto zero até tópicos avançados. Começaremos com os fundamentos e evoluiremos para conceitos modernos como arrow functions, destructuring, promises, async/await e muito mais.",
			CategoryID:      1,
			Level:           models.LevelIntermediate,
			Duration:        40,
			LessonCount:     35,
			Students:        1250,
			Rating:          4.8,
			InstructorID:    1,
			Image:           "https://images.unsplash.com/photo-1627398242454-45a1465c2479?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
			PreviewVideo:    "https://www.youtube.com/embed/PkZNo7MFNFg",
			Requirements:    []string{"Conhecimentos básicos de HTML", "Computador com acesso à internet"},
			WhatYouWillLearn: []string{
				"Fundamentos do JavaScript moderno",
				"Manipulação do DOM",
				"Programação assíncrona",
				"ES6+ features",
				"Projetos práticos",
			},
			Tags:      []string{"javascript", "frontend", "es6", "async"},
			Featured:  true,
			CreatedAt: "2023-01-15",
		},
		{
			ID:              2,
			Title:           "React.js - Construindo Aplicações Profissionais",
			Description:     "Aprenda React com Hooks, Context API, Redux e crie projetos do mundo real.",
			FullDescription: "Curso completo de React.js focado em aplicações profissionais. Você aprenderá desde os fundamentos até técnicas avançadas como custom hooks, performance optimization, testing e deployment.",
			CategoryID:      1,
			Level:           models.LevelAdvanced,
			Duration:        50,
			LessonCount:     42,
			Students:        980,
			Rating:          4.9,
			InstructorID:    2,
			Image:           "https://images.unsplash.com/photo-1633356122544-f134324a6cee?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
			PreviewVideo:    "https://www.youtube.com/embed/w7ejDZ8SWv8",
			Requirements:    []string{"JavaScript intermediário", "Conhecimentos básicos de HTML/CSS"},
			WhatYouWillLearn: []string{
				"Fundamentos do React",
				"Hooks e Context API",
				"State management",
				"Routing com React Router",
				"Projetos reais",
			},
			Tags:      []string{"react", "frontend", "hooks", "redux"},
			Featured:  true,
			CreatedAt: "2023-02-10",
		},
		{
			ID:              3,
			Title:           "Node.js & Express - Backend Masterclass",
			Description:     "Desenvolva APIs RESTful robustas com Node.js, Express, MongoDB e autenticação JWT.",
			FullDescription: "Torne-se um desenvolvedor backend completo com Node.js e Express. Aprenda a construir APIs RESTful, integrar bancos de dados, implementar autenticação JWT, e muito mais.",
			CategoryID:      2,
			Level:           models.LevelIntermediate,
			Duration:        45,
			LessonCount:     38,
			Students:        750,
			Rating:          4.7,
			InstructorID:    3,
			Image:           "https://images.unsplash.com/photo-1627398242454-45a1465c2479?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
			PreviewVideo:    "https://www.youtube.com/embed/RLtyhwFtXQA",
			Requirements:    []string{"JavaScript básico", "Conhecimentos de terminal"},
			WhatYouWillLearn: []string{
				"Fundamentos do Node.js",
				"Construção de APIs REST",
				"Integração com MongoDB",
				"Autenticação JWT",
				"Deploy de aplicações",
			},
			Tags:      []string{"nodejs", "backend", "express", "mongodb"},
			Featured:  true,
			CreatedAt: "2023-03-05",
		},
		{
			ID:              4,
			Title:           "HTML5 & CSS3 - Fundamentos Web Modernos",
			Description:     "Domine as bases do desenvolvimento web com HTML5 semântico e CSS3 moderno.",
			FullDescription: "Curso completo para iniciantes em desenvolvimento web. Aprenda HTML5 semântico, CSS3 com Flexbox e Grid, responsividade, acessibilidade e boas práticas.",
			CategoryID:      1,
			Level:           models.LevelBeginner,
			Duration:        30,
			LessonCount:     25,
			Students:        2100,
			Rating:          4.6,
			InstructorID:    4,
			Image:           "https://images.unsplash.com/photo-1547658719-da2b51169166?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
			PreviewVideo:    "https://www.youtube.com/embed/916GWv2Qs08",
			Requirements:    []string{"Nenhum conhecimento prévio necessário"},
			WhatYouWillLearn: []string{
				"HTML5 semântico",
				"CSS3 moderno",
				"Flexbox e Grid",
				"Design responsivo",
				"Projetos práticos",
			},
			Tags:      []string{"html", "css", "web", "frontend"},
			CreatedAt: "2023-01-20",
		},
		{
			ID:              5,
			Title:           "Python para Ciência de Dados",
			Description:     "Aprenda Python, Pandas, NumPy e Matplotlib para análise e visualização de dados.",
			FullDescription: "Curso completo de Python focado em ciência de dados. Aprenda a manipular dados, criar visualizações, e aplicar técnicas de análise com bibliotecas populares.",
			CategoryID:      5,
			Level:           models.LevelIntermediate,
			Duration:        55,
			LessonCount:     45,
			Students:        620,
			Rating:          4.8,
			InstructorID:    1,
			Image:           "https://images.unsplash.com/photo-1555949963-aa79dcee981c?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
			PreviewVideo:    "https://www.youtube.com/embed/rfscVS0vtbw",
			Requirements:    []string{"Lógica de programação", "Conhecimentos básicos de matemática"},
			WhatYouWillLearn: []string{
				"Fundamentos do Python",
				"Pandas para análise de dados",
				"Visualização com Matplotlib",
				"NumPy para computação científica",
				"Projetos reais",
			},
			Tags:      []string{"python", "datascience", "pandas", "numpy"},
			CreatedAt: "2023-04-15",
		},
		{
			ID:              6,
			Title:           "TypeScript - Tipagem Avançada",
			Description:     "Aprofunde-se em TypeScript com generics, decorators, interfaces avançadas.",
			FullDescription: "Domine TypeScript com este curso avançado. Aprenda tipos genéricos, decorators, namespaces, módulos, e como integrar TypeScript com frameworks modernos.",
			CategoryID:      1,
			Level:           models.LevelAdvanced,
			Duration:        35,
			LessonCount:     30,
			Students:        480,
			Rating:          4.9,
			InstructorID:    2,
			Image:           "https://images.unsplash.com/photo-1516116216624-53e697fedbea?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
			PreviewVideo:    "https://www.youtube.com/embed/BwuLxPH8IDs",
			Requirements:    []string{"JavaScript intermediário", "Conhecimentos básicos de OOP"},
			WhatYouWillLearn: []string{
				"Tipos avançados",
				"Generics",
				"Decorators",
				"Integração com React",
				"Projetos escaláveis",
			},
			Tags:      []string{"typescript", "frontend", "javascript"},
			Featured:  true,
			CreatedAt: "2023-05-20",
		},
	}
}

func seedLessons() []models.Lesson {
	return []models.Lesson{
		{ID: 1, CourseID: 1, Title: "Introdução ao JavaScript", Description: "Visão geral do JavaScript e configuração do ambiente.", Duration: 45, VideoURL: "https://www.youtube.com/embed/PkZNo7MFNFg", Order: 1, Resources: []string{"slides.pdf", "exercicios.zip"}},
		{ID: 2, CourseID: 1, Title: "Variáveis e Tipos de Dados", Description: "let, const, var e os tipos primitivos do JavaScript.", Duration: 60, VideoURL: "https://www.youtube.com/embed/PkZNo7MFNFg", Order: 2, Resources: []string{}},
		{ID: 3, CourseID: 1, Title: "Funções em JavaScript", Description: "Funções tradicionais, arrow functions e parâmetros.", Duration: 50, VideoURL: "https://www.youtube.com/embed/PkZNo7MFNFg", Order: 3, Resources: []string{"exemplos.js"}},
		{ID: 4, CourseID: 2, Title: "Introdução ao React", Description: "O que é React e por que usá-lo.", Duration: 55, VideoURL: "https://www.youtube.com/embed/w7ejDZ8SWv8", Order: 1, Resources: []string{}},
		{ID: 5, CourseID: 2, Title: "Componentes e Props", Description: "Criando componentes reutilizáveis.", Duration: 65, VideoURL: "https://www.youtube.com/embed/w7ejDZ8SWv8", Order: 2, Resources: []string{"componentes-exemplo.zip"}},
		{ID: 6, CourseID: 3, Title: "Introdução ao Node.js", Description: "Configuração e primeiros passos.", Duration: 50, VideoURL: "https://www.youtube.com/embed/RLtyhwFtXQA", Order: 1, Resources: []string{}},
		{ID: 7, CourseID: 4, Title: "HTML5 Semântico", Description: "Estrutura semântica de páginas web.", Duration: 40, VideoURL: "https://www.youtube.com/embed/916GWv2Qs08", Order: 1, Resources: []string{}},
		{ID: 8, CourseID: 5, Title: "Introdução ao Python", Description: "Instalação e sintaxe básica.", Duration: 55, VideoURL: "https://www.youtube.com/embed/rfscVS0vtbw", Order: 1, Resources: []string{}},
		{ID: 9, CourseID: 6, Title: "TypeScript Basics", Description: "Configuração e tipos básicos.", Duration: 45, VideoURL: "https://www.youtube.com/embed/BwuLxPH8IDs", Order: 1, Resources: []string{}},
	}
}
