package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"

	"spiral-oracle/internal/oracle"
	"spiral-oracle/internal/scoring"
)

const (
	colorGreen = "\033[32m"
	colorRed   = "\033[31m"
	colorCyan  = "\033[36m"
	colorReset = "\033[0m"
)

// Scenario es una entrada de prueba con el elemento esperado por el router.
type Scenario struct {
	Label           string
	Input           string
	ExpectedElement string
}

func main() {
	scenarios := []Scenario{
		{Label: "fuego", Input: "A fire burns in me, passion and creative desire push me to act now", ExpectedElement: "fire"},
		{Label: "agua", Input: "Tears and grief flow through my heart like a river of feeling", ExpectedElement: "water"},
		{Label: "tierra", Input: "I need to ground this plan with practical steps and stable routine", ExpectedElement: "earth"},
		{Label: "aire", Input: "My thoughts circle endlessly, I want clarity to understand this idea", ExpectedElement: "air"},
		{Label: "neutro", Input: "Nothing much happened today", ExpectedElement: "aether"},
	}

	attention := scoring.NewAttentionScorer(rand.New(rand.NewSource(1)))
	liminal := scoring.NewLiminalScorer(rand.New(rand.NewSource(1)))

	failures := 0
	for _, sc := range scenarios {
		fmt.Printf("%s[%s]%s %s\n", colorCyan, sc.Label, colorReset, sc.Input)

		in := scoring.Input{Text: sc.Input}
		att := attention.ScoreAndGuide(in, "check")
		lim := liminal.ScoreAndGuide(in, "check")

		failures += checkResult("attention", att)
		failures += checkResult("liminal", lim)

		element := string(oracle.RouteElement(sc.Input))
		if element != sc.ExpectedElement {
			fmt.Printf("%sFAIL%s router: expected %s, got %s\n", colorRed, colorReset, sc.ExpectedElement, element)
			failures++
		} else {
			fmt.Printf("%sOK%s router -> %s\n", colorGreen, colorReset, element)
		}

		fmt.Printf("  attention mode=%s | liminal mode=%s\n\n", att.Mode, lim.Mode)
	}

	// El patron caracteristico debe converger con inputs repetidos.
	deep := scoring.Input{Text: "I wonder why this feels like a river returning? I notice my breath and my body soften"}
	for i := 0; i < 5; i++ {
		attention.ScoreAndGuide(deep, "repeat")
	}
	if ema, ok := attention.Characteristic("repeat", scoring.DimDepth); !ok || ema <= 0.5 {
		fmt.Printf("%sFAIL%s characteristic depth did not converge (ema=%.2f ok=%v)\n", colorRed, colorReset, ema, ok)
		failures++
	} else {
		fmt.Printf("%sOK%s characteristic depth converged to %.2f\n", colorGreen, colorReset, ema)
	}

	if got := len(attention.History(100)); got == 0 {
		fmt.Printf("%sFAIL%s ledger empty after evaluations\n", colorRed, colorReset)
		failures++
	}

	fmt.Println("\n==== Resumen ====")
	if failures > 0 {
		log.Printf("%d checks fallidos", failures)
		os.Exit(1)
	}
	fmt.Printf("%sTodos los checks pasaron%s\n", colorGreen, colorReset)
}

// checkResult valida los invariantes basicos de un Result.
func checkResult(name string, r scoring.Result) int {
	failures := 0
	for dim, score := range r.Scores {
		if score < 0 || score > 1 {
			fmt.Printf("%sFAIL%s %s score %s=%.3f fuera de [0,1]\n", colorRed, colorReset, name, dim, score)
			failures++
		}
	}
	if r.Mode == "" {
		fmt.Printf("%sFAIL%s %s sin modo\n", colorRed, colorReset, name)
		failures++
	}
	if r.Guidance == "" {
		fmt.Printf("%sFAIL%s %s sin guidance\n", colorRed, colorReset, name)
		failures++
	}
	return failures
}
