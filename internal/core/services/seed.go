package services

import "github.com/custodia-labs/codexr-cli/internal/core/domain"

// SeedDocuments returns the starter documentation set for the offline
// index, one entry per platform category.
func SeedDocuments() []domain.IndexedDocument {
	return []domain.IndexedDocument{
		{
			Title: "Unity VR Teleportation Setup",
			Content: "To set up teleportation in Unity VR, install XR Interaction Toolkit, " +
				"create XR Origin, add TeleportationProvider component, and configure " +
				"teleport areas with NavMesh.",
			Source:   "Unity Documentation",
			Category: domain.CategoryUnity,
			URL:      "https://docs.unity3d.com/Packages/com.unity.xr.interaction.toolkit@2.5/manual/teleportation.html",
		},
		{
			Title: "Unreal VR Multiplayer Setup",
			Content: "Setting up VR multiplayer in Unreal Engine requires enabling VR template, " +
				"configuring network settings, creating custom game mode, and implementing " +
				"proper pawn replication.",
			Source:   "Unreal Documentation",
			Category: domain.CategoryUnreal,
			URL:      "https://docs.unrealengine.com/5.0/en-us/multiplayer-programming-quick-start-for-unreal-engine/",
		},
		{
			Title: "AR Occlusion Shaders",
			Content: "AR occlusion shaders write to depth buffer without visible output. " +
				"Use ZWrite On, ZTest LEqual, ColorMask 0, and Queue Geometry-1 for proper " +
				"rendering order.",
			Source:   "Shader Documentation",
			Category: domain.CategoryShader,
			URL:      "https://docs.unity3d.com/Manual/SL-ShaderReplacement.html",
		},
	}
}
