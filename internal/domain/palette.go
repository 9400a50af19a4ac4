package domain

import (
	"fmt"
	"strconv"
)

// Paletas fixas de cores usadas pelos painéis do dashboard. O domínio é
// fechado de propósito: exatamente 3 categorias, 4 regiões e 4 anos.
// Uma chave desconhecida é tratada como erro e não recebe cor padrão.
var (
	categoryColors = map[string]string{
		"Furniture":       "#005C53",
		"Office Supplies": "#9FC131",
		"Technology":      "#042940",
	}

	regionColors = map[string]string{
		"West":    "#005C53",
		"East":    "#9FC131",
		"Central": "#DBF227",
		"South":   "#D6FF79",
	}

	yearColors = map[int]string{
		2020: "#005C53",
		2021: "#9FC131",
		2022: "#DBF227",
		2023: "#D6FF79",
	}
)

// CategoryColor retorna a cor fixa de uma categoria de produto.
func CategoryColor(category string) (string, error) {
	color, ok := categoryColors[category]
	if !ok {
		return "", fmt.Errorf("categoria sem cor definida na paleta: %q", category)
	}
	return color, nil
}

// RegionColor retorna a cor fixa de uma região.
func RegionColor(region string) (string, error) {
	color, ok := regionColors[region]
	if !ok {
		return "", fmt.Errorf("região sem cor definida na paleta: %q", region)
	}
	return color, nil
}

// YearColor retorna a cor fixa de um ano do dataset.
func YearColor(year int) (string, error) {
	color, ok := yearColors[year]
	if !ok {
		return "", fmt.Errorf("ano sem cor definida na paleta: %d", year)
	}
	return color, nil
}

// TranslucentColor converte uma cor hexadecimal "#RRGGBB" para o formato
// rgba com opacidade fixa de 0.7, usado nos anéis internos do sunburst.
func TranslucentColor(hexColor string) (string, error) {
	if len(hexColor) != 7 || hexColor[0] != '#' {
		return "", fmt.Errorf("cor hexadecimal inválida: %q", hexColor)
	}

	r, err := strconv.ParseUint(hexColor[1:3], 16, 8)
	if err != nil {
		return "", fmt.Errorf("cor hexadecimal inválida: %q", hexColor)
	}
	g, err := strconv.ParseUint(hexColor[3:5], 16, 8)
	if err != nil {
		return "", fmt.Errorf("cor hexadecimal inválida: %q", hexColor)
	}
	b, err := strconv.ParseUint(hexColor[5:7], 16, 8)
	if err != nil {
		return "", fmt.Errorf("cor hexadecimal inválida: %q", hexColor)
	}

	return fmt.Sprintf("rgba(%d,%d,%d,0.7)", r, g, b), nil
}
