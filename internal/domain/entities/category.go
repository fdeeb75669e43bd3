package entities

import "strings"

const (
	CategoryGeral          = "Geral"
	CategoryRevisao        = "Revisão"
	CategoryTrocaDeOleo    = "Troca de Óleo"
	CategoryFreios         = "Freios"
	CategorySuspensao      = "Suspensão"
	CategoryMotor          = "Motor"
	CategoryEletrica       = "Elétrica"
	CategoryArCondicionado = "Ar Condicionado"
	CategoryManutencao     = "Manutenção"
)

type categoryRule struct {
	keywords []string
	category string
}

// Evaluated in order; the first rule with a matching keyword wins.
var categoryRules = []categoryRule{
	{[]string{"revisão", "revisao"}, CategoryRevisao},
	{[]string{"óleo", "oleo"}, CategoryTrocaDeOleo},
	{[]string{"freio", "pastilha"}, CategoryFreios},
	{[]string{"suspensão", "suspensao", "amortecedor"}, CategorySuspensao},
	{[]string{"motor"}, CategoryMotor},
	{[]string{"elétric", "eletric", "bateria"}, CategoryEletrica},
	{[]string{"ar condicionado", "ar-condicionado"}, CategoryArCondicionado},
}

// ClassifyCategory maps a free-text problem description to a service category.
func ClassifyCategory(description *string) string {
	if description == nil {
		return CategoryGeral
	}
	return ClassifyCategoryText(*description)
}

func ClassifyCategoryText(description string) string {
	text := strings.ToLower(strings.TrimSpace(description))
	if text == "" {
		return CategoryGeral
	}
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				return rule.category
			}
		}
	}
	return CategoryManutencao
}
