package config

// Plan is one subscription tier offered at signup.
type Plan struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
}

// Plans is the fixed subscription catalog, ordered cheapest first.
var Plans = []Plan{
	{
		ID:          "junior",
		Name:        "Júnior",
		Price:       100,
		Description: "Ideal para iniciantes",
		Features: []string{
			"Acesso a cursos básicos",
			"Suporte por e-mail",
			"Certificados inclusos",
			"1 projeto prático",
			"Comunidade de alunos",
		},
	},
	{
		ID:          "pleno",
		Name:        "Pleno",
		Price:       125,
		Description: "Para quem quer evoluir rapidamente",
		Features: []string{
			"Todos os recursos do Júnior",
			"Acesso a cursos intermediários",
			"Suporte prioritário",
			"3 projetos práticos",
			"Code reviews",
			"Webinars mensais",
		},
	},
	{
		ID:          "senior",
		Name:        "Sênior",
		Price:       160,
		Description: "Experiência completa de aprendizado",
		Features: []string{
			"Todos os recursos do Pleno",
			"Acesso a todos os cursos",
			"Suporte 24/7",
			"Mentoria individual",
			"Projetos avançados",
			"Workshops exclusivos",
			"Acesso antecipado a novos cursos",
		},
	},
}

// PlanByID returns the plan with the given id, or nil if unknown.
func PlanByID(id string) *Plan {
	for i := range Plans {
		if Plans[i].ID == id {
			return &Plans[i]
		}
	}
	return nil
}
