package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/codexr-cli/internal/core/domain"
)

var categoryExamples = map[domain.Category][]string{
	domain.CategoryUnity: {
		"How do I add teleport locomotion in Unity VR?",
		"Setting up XR Interaction Toolkit",
	},
	domain.CategoryUnreal: {
		"How do I set up multiplayer in Unreal VR?",
		"VR pawn setup in UE5",
	},
	domain.CategoryShader: {
		"Which shader works best for AR occlusion?",
		"Optimizing shaders for mobile VR",
	},
	domain.CategoryGeneral: {
		"Getting started with VR development",
		"Choosing between Unity and Unreal",
	},
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the supported query categories",
	Run: func(cmd *cobra.Command, _ []string) {
		for _, c := range domain.Categories {
			cmd.Println(headingStyle.Render(string(c)))
			for _, example := range categoryExamples[c] {
				cmd.Printf("  %s\n", example)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}
