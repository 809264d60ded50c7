package templates

import "github.com/sumwatshade/macauwx/cmd/report"

// Builtins returns the compiled-in default template for every language. The
// item templates keep their surrounding newlines so consecutive forecasts stay
// separated.
func Builtins() map[report.Language]report.TemplateDocument {
	return map[report.Language]report.TemplateDocument{
		report.Chinese: {
			Main: `# 澳門天氣預報 Weather Forecast Macau

## 今日天氣情況 Today's Situation
{today_situation}

## 系統資訊 System Information
- **發布機構**: {author}
- **發布時間**: {pubdate}
- **語言**: {language}

## 天氣預報 Weather Forecast

{forecasts}

---
*最後更新 Last Updated: {current_time}*
`,
			Item: `
### {date}
**潮汐 Astronomical Tide**: {tide}

{description}

---
`,
			HasItem: true,
		},
		report.Portuguese: {
			Main: `# Previsão Meteorológica de Macau

## Situação Meteorológica de Hoje
{today_situation}

## Informação do Sistema
- **Entidade**: {author}
- **Data de Publicação**: {pubdate}
- **Idioma**: {language}

## Previsão Meteorológica

{forecasts}

---
*Última atualização: {current_time}*
`,
			Item: `
### {date}
**Maré Astronómica**: {tide}

{description}

---
`,
			HasItem: true,
		},
		report.English: {
			Main: `# Macau Weather Forecast

## Today's Weather Situation
{today_situation}

## System Information
- **Issuing Authority**: {author}
- **Publication Time**: {pubdate}
- **Language**: {language}

## Weather Forecast

{forecasts}

---
*Last Updated: {current_time}*
`,
			Item: `
### {date}
**Astronomical Tide**: {tide}

{description}

---
`,
			HasItem: true,
		},
	}
}
