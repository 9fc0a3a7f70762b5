package services

import "github.com/custodia-labs/codexr-cli/internal/core/domain"

// Template is a pre-authored static answer bundle for one topic.
type Template struct {
	Topic         string
	SubTasks      []domain.SubTask
	MainCode      string
	BestPractices []string
	Gotchas       []string
	DocLinks      []string
}

// unityTopics fixes the scan order for Unity topic selection. The
// first topic whose key appears in the lowered query wins; the first
// entry doubles as the default when nothing matches.
var unityTopics = []string{"teleport"}

// unityKnowledge maps Unity topics to templates.
var unityKnowledge = map[string]Template{
	"teleport": {
		Topic: "teleport",
		SubTasks: []domain.SubTask{
			{
				Description: "Install the XR Interaction Toolkit package",
				CodeSnippet: "// Install XR Interaction Toolkit via Package Manager",
			},
			{
				Description: "Create an XR Origin (camera rig) in the scene",
				CodeSnippet: `GameObject.Find("XR Origin")`,
			},
			{
				Description: "Add a Teleportation Provider component",
				CodeSnippet: "GetComponent<TeleportationProvider>()",
			},
			{
				Description: "Configure teleport areas on valid surfaces",
				CodeSnippet: "// Add TeleportationArea components to valid surfaces",
			},
		},
		MainCode: `using UnityEngine;
using UnityEngine.XR.Interaction.Toolkit;

public class TeleportSetup : MonoBehaviour
{
    public TeleportationProvider teleportProvider;
    public XRRayInteractor rayInteractor;

    void Start()
    {
        if (teleportProvider == null)
            teleportProvider = FindObjectOfType<TeleportationProvider>();

        if (rayInteractor != null)
        {
            rayInteractor.enableUIInteraction = false;
            rayInteractor.lineType = XRRayInteractor.LineType.ProjectileCurve;
        }
    }
}`,
		BestPractices: []string{
			"Use NavMesh for teleportation boundaries",
			"Provide visual feedback for valid teleport areas",
			"Consider comfort settings to reduce motion sickness",
			"Test on different VR headsets for compatibility",
		},
		Gotchas: []string{
			"Ensure TeleportationProvider is assigned in the scene",
			"NavMesh must be baked for teleportation to work",
			"Ray interactor may conflict with UI interactions",
			"Performance impact on mobile VR platforms",
		},
		DocLinks: []string{
			"https://docs.unity3d.com/Packages/com.unity.xr.interaction.toolkit@2.5/manual/teleportation.html",
			"https://docs.unity3d.com/Manual/nav-BuildingNavMesh.html",
		},
	},
}

// unrealKnowledge has a single topic; it is selected regardless of
// query content. Extending the table must preserve a deterministic,
// query-independent fallback.
var unrealKnowledge = map[string]Template{
	"multiplayer": {
		Topic: "multiplayer",
		SubTasks: []domain.SubTask{
			{
				Description: "Create a new project from the VR template",
				CodeSnippet: "// Create new VR project in Unreal Engine",
			},
			{
				Description: "Configure network settings for multiplayer",
				CodeSnippet: "// Enable multiplayer in Project Settings",
			},
			{
				Description: "Implement a custom VR game mode",
				CodeSnippet: "// Create custom VRGameMode class",
			},
			{
				Description: "Setup player pawn replication",
				CodeSnippet: "// Configure pawn replication",
			},
		},
		MainCode: `// VRGameMode.h
UCLASS()
class VRGAME_API AVRGameMode : public AGameModeBase
{
    GENERATED_BODY()

public:
    AVRGameMode();

protected:
    virtual void PostLogin(APlayerController* NewPlayer) override;
    virtual void Logout(AController* Exiting) override;

    UPROPERTY(EditDefaultsOnly, BlueprintReadOnly)
    int32 MaxPlayers = 4;
};

// VRGameMode.cpp
AVRGameMode::AVRGameMode()
{
    DefaultPawnClass = AVRPawn::StaticClass();
    PlayerControllerClass = AVRPlayerController::StaticClass();
}

void AVRGameMode::PostLogin(APlayerController* NewPlayer)
{
    Super::PostLogin(NewPlayer);
    UE_LOG(LogTemp, Log, TEXT("Player joined VR session"));
}`,
		BestPractices: []string{
			"Use dedicated servers for stable multiplayer",
			"Implement proper VR controller replication",
			"Optimize network traffic for VR-specific data",
			"Handle VR-specific player disconnections gracefully",
		},
		Gotchas: []string{
			"VR pawns require special network setup",
			"Hand tracking data needs careful replication",
			"Locomotion can cause network prediction issues",
			"Performance drops significantly with multiple VR players",
		},
		DocLinks: []string{
			"https://docs.unrealengine.com/5.0/en-us/multiplayer-programming-quick-start-for-unreal-engine/",
			"https://docs.unrealengine.com/5.0/en-us/vr-development-in-unreal-engine/",
		},
	},
}

// shaderKnowledge has a single topic, selected regardless of query.
var shaderKnowledge = map[string]Template{
	"occlusion": {
		Topic: "occlusion",
		SubTasks: []domain.SubTask{
			{
				Description: "Create an occlusion shader asset",
				CodeSnippet: "// Create new Unlit shader in Unity",
			},
			{
				Description: "Configure depth testing for the occlusion pass",
				CodeSnippet: "// Setup depth buffer comparison",
			},
			{
				Description: "Implement alpha blending for partial occlusion",
				CodeSnippet: "// Configure transparency for occlusion",
			},
			{
				Description: "Configure the shader for mobile AR performance",
				CodeSnippet: "// Reduce shader complexity for mobile",
			},
		},
		MainCode: `Shader "AR/OcclusionShader"
{
    Properties
    {
        _MainTex ("Texture", 2D) = "white" {}
        _Alpha ("Alpha", Range(0,1)) = 0.5
    }
    SubShader
    {
        Tags { "RenderType"="Transparent" "Queue"="Geometry-1" }
        LOD 100

        Pass
        {
            ZWrite On
            ZTest LEqual
            ColorMask 0

            CGPROGRAM
            #pragma vertex vert
            #pragma fragment frag

            #include "UnityCG.cginc"

            struct appdata
            {
                float4 vertex : POSITION;
            };

            struct v2f
            {
                float4 vertex : SV_POSITION;
            };

            v2f vert (appdata v)
            {
                v2f o;
                o.vertex = UnityObjectToClipPos(v.vertex);
                return o;
            }

            fixed4 frag (v2f i) : SV_Target
            {
                return fixed4(0,0,0,0);
            }
            ENDCG
        }
    }
}`,
		BestPractices: []string{
			"Use depth-only rendering for performance",
			"Implement proper depth buffer management",
			"Consider mobile GPU limitations",
			"Test with different AR tracking systems",
		},
		Gotchas: []string{
			"Render queue order is critical for occlusion",
			"Mobile GPUs may have depth precision issues",
			"Alpha blending can cause sorting problems",
			"Performance impact on older devices",
		},
		DocLinks: []string{
			"https://docs.unity3d.com/Manual/SL-ShaderReplacement.html",
			"https://developers.google.com/ar/develop/unity/occlusion",
		},
	},
}

// generalResponse is the fixed onboarding answer for the General
// category. It is independent of query text.
func generalResponse(query string) *domain.Response {
	return &domain.Response{
		Query:    query,
		Category: domain.CategoryGeneral,
		SubTasks: []domain.SubTask{
			{
				Description: "Install the SDK for your chosen platform (Unity or Unreal)",
				Explanation: "Select based on your team's expertise and project requirements",
			},
			{
				Description: "Configure your development environment and testing devices",
				Explanation: "Set up IDE, version control, and target headsets",
			},
			{
				Description: "Create a minimal scene and verify head tracking works",
				Explanation: "A working baseline catches device setup problems early",
			},
		},
		CodeSnippet: "// Choose your platform and follow platform-specific setup guides",
		BestPractices: []string{
			"Start with simple interactions before complex features",
			"Test regularly on target devices",
			"Follow platform-specific design guidelines",
			"Optimize for performance from the beginning",
		},
		Gotchas: []string{
			"Each platform has different performance characteristics",
			"SDK updates can break existing functionality",
			"Device compatibility varies significantly",
		},
		DifficultyRating: 3,
		DocumentationLinks: []string{
			"https://docs.unity3d.com/Manual/XR.html",
			"https://docs.unrealengine.com/5.0/en-us/vr-development-in-unreal-engine/",
		},
		EstimatedTime: "2-4 hours for basic setup",
	}
}

// officialDocLinks is the fixed per-category documentation link table
// used by retrieval fusion. General doubles as the fallback.
var officialDocLinks = map[domain.Category][]string{
	domain.CategoryUnity: {
		"https://docs.unity3d.com/Manual/",
		"https://docs.unity3d.com/Packages/com.unity.xr.interaction.toolkit@2.5/manual/",
		"https://learn.unity.com/",
	},
	domain.CategoryUnreal: {
		"https://docs.unrealengine.com/5.0/en-us/",
		"https://docs.unrealengine.com/5.0/en-us/vr-development-in-unreal-engine/",
		"https://docs.unrealengine.com/5.0/en-us/multiplayer-programming-quick-start-for-unreal-engine/",
	},
	domain.CategoryShader: {
		"https://docs.unity3d.com/Manual/SL-Reference.html",
		"https://docs.unity3d.com/Manual/shader-tutorials.html",
	},
	domain.CategoryGeneral: {
		"https://developers.google.com/ar/",
		"https://developer.oculus.com/documentation/",
	},
}
