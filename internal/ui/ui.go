package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

var (
	// Colors for different message types
	Success = color.New(color.FgGreen, color.Bold)
	Error   = color.New(color.FgRed, color.Bold)
	Warning = color.New(color.FgYellow, color.Bold)
	Info    = color.New(color.FgCyan, color.Bold)
	Dim     = color.New(color.FgHiBlack)

	// Emojis with colors
	MateEmoji    = "🧉"
	RobotEmoji   = "🤖"
	SuccessEmoji = Success.Sprint("✅")
	ErrorEmoji   = Error.Sprint("❌")
)

const bannerWidth = 60

// PrintBanner imprime un separador de etapa con el mensaje centrado entre líneas.
func PrintBanner(msg string) {
	line := strings.Repeat("=", bannerWidth)
	Info.Println(line)
	Info.Println(msg)
	Info.Println(line)
}

// PrintStage anuncia una etapa del pipeline con su emoji.
func PrintStage(emoji, msg string) {
	fmt.Printf("\n%s %s\n", emoji, msg)
}

// PrintDetail imprime una línea secundaria indentada debajo de la etapa actual.
func PrintDetail(msg string) {
	Dim.Printf("   %s\n", msg)
}

// PrintBlock imprime contenido libre delimitado por guiones, como el texto
// que devuelve el modelo.
func PrintBlock(content string) {
	line := strings.Repeat("-", bannerWidth)
	fmt.Println(line)
	fmt.Println(content)
	fmt.Println(line)
}

// PrintSuccess imprime un mensaje final de éxito.
func PrintSuccess(msg string) {
	fmt.Printf("\n%s %s\n", SuccessEmoji, msg)
}

// PrintError imprime un mensaje final de error.
func PrintError(msg string) {
	fmt.Printf("\n%s %s\n", ErrorEmoji, msg)
}
