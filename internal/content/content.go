// Package content guarda os textos fixos da página: depoimentos e FAQ.
package content

type Testimonial struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	Content string `json:"content"`
	Rating  int    `json:"rating"`
	Image   string `json:"image"`
}

type FAQItem struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

var testimonials = []Testimonial{
	{
		ID:      "1",
		Name:    "Mariana Silva",
		Role:    "Designer de Sobrancelhas",
		Content: "O curso de Micropigmentação Fio a Fio mudou completamente minha carreira! A Ju é uma profissional incrível, ensina com amor e dedicação. Hoje atendo várias clientes por semana com total segurança.",
		Rating:  5,
		Image:   "/assets/testimonial-1.webp",
	},
	{
		ID:      "2",
		Name:    "Camila Rodrigues",
		Role:    "Esteticista",
		Content: "Fiz o curso de Limpeza de Pele Profunda e saí preparada para atender no mesmo dia! A metodologia é excepcional, com muita prática e material de apoio completo. Super recomendo!",
		Rating:  5,
		Image:   "/assets/testimonial-2.webp",
	},
	{
		ID:      "3",
		Name:    "Juliana Oliveira",
		Role:    "Micropigmentadora",
		Content: "Já tinha experiência na área, mas o curso de Shadow 3D da Studio Ju Carvalho elevou meu trabalho a outro nível. As técnicas são avançadas e os resultados impressionam minhas clientes!",
		Rating:  5,
		Image:   "/assets/testimonial-3.webp",
	},
}

var faq = []FAQItem{
	{
		ID:       "1",
		Question: "Os cursos incluem material didático?",
		Answer:   "Sim! Todos os cursos incluem material de estudo completo, kit personalizado para prática, coffee break durante as aulas e certificado de conclusão.",
	},
	{
		ID:       "2",
		Question: "Preciso ter experiência prévia?",
		Answer:   "Não! Nossos cursos são desenvolvidos tanto para iniciantes quanto para profissionais que desejam aprimorar suas técnicas. Temos turmas específicas para cada nível.",
	},
	{
		ID:       "3",
		Question: "Como funciona a parte prática?",
		Answer:   "Todos os cursos incluem prática supervisionada em modelo real. Você terá acompanhamento individual durante toda a execução, garantindo segurança e confiança para iniciar seus atendimentos.",
	},
	{
		ID:       "4",
		Question: "Qual a forma de pagamento?",
		Answer:   "Aceitamos pagamento via PIX, cartão de crédito (parcelamento disponível) e transferência bancária. Entre em contato para consultar condições especiais.",
	},
	{
		ID:       "5",
		Question: "Recebo certificado?",
		Answer:   "Sim! Ao concluir o curso, você receberá um certificado de conclusão reconhecido, que comprova sua formação e capacitação técnica na área.",
	},
	{
		ID:       "6",
		Question: "As turmas são limitadas?",
		Answer:   "Sim! Trabalhamos com turmas reduzidas para garantir atendimento personalizado e qualidade no ensino. Por isso, recomendamos garantir sua vaga com antecedência.",
	},
}

// Testimonials devolve uma cópia; quem chama pode alterar à vontade.
func Testimonials() []Testimonial {
	return append([]Testimonial(nil), testimonials...)
}

func FAQ() []FAQItem {
	return append([]FAQItem(nil), faq...)
}
