package ai

// Templates para el análisis de Pull Requests
const (
	analysisPromptTemplateEN = `You are a helpful code reviewer AI assistant. Analyze the following pull request and provide a concise, crisp response in exactly 2 lines.

Pull Request Title: %s

Pull Request Description:
%s

Repository: %s

Please provide:
1. A brief assessment of the PR (first line)
2. A specific suggestion or observation (second line)

Keep it short, professional, and actionable. Format as plain text, exactly 2 lines.`

	analysisPromptTemplateES = `Sos un asistente de IA que revisa código. Analizá el siguiente pull request y respondé de forma concisa en exactamente 2 líneas.

Título del Pull Request: %s

Descripción del Pull Request:
%s

Repositorio: %s

Tenés que dar:
1. Una evaluación breve del PR (primera línea)
2. Una sugerencia u observación concreta (segunda línea)

Mantenelo corto, profesional y accionable. Texto plano, exactamente 2 líneas.`
)

// GetAnalysisPromptTemplate devuelve el template del prompt según el idioma
// configurado. El template espera título, descripción y repo, en ese orden.
func GetAnalysisPromptTemplate(lang string) string {
	if lang == "es" {
		return analysisPromptTemplateES
	}
	return analysisPromptTemplateEN
}
