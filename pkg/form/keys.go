package form

// Section keys, in wizard order.
const (
	SectionIntro    = "intro"
	SectionCovered  = "covered"
	SectionRooftop  = "rooftop"
	SectionSignage  = "signage"
	SectionDrawings = "drawings"
	SectionServer   = "server"
	SectionGenerate = "generate"
)

// Answer keys read by hosts and the cover renderer.
const (
	ProjectName    = "project_name"
	ProjectManager = "project_manager"
	SubmittalDate  = "submittal_date"
	Logo           = "logo"

	CoveredSpaces = "covered_spaces"
	Systems       = "systems"

	UMSLED        = "ums_led"
	UMSInstall    = "ums_install"
	UMSEmbedded   = "ums_emb"
	UMSConduit    = "ums_cond"
	UMSRemovePOSU = "ums_remove_posu"

	UpsolutLED      = "up_led"
	UpsolutInstall  = "up_install"
	UpsolutEmbedded = "up_emb"
	UpsolutConduit  = "up_cond"

	Rooftop        = "rooftop"
	RooftopSensors = "rooftop_sensors"

	Signage       = "signage"
	SignageTypes  = "signage_types"
	SignageDesign = "signage_design"

	Drawings        = "drawings"
	NetworkTopology = "network_topology"
)

// Option values.
const (
	Yes = "Yes"
	No  = "No"

	SystemUMS     = "UMS"
	SystemUpsolut = "Upsolut"

	LEDInternal = "Internal"
	LEDExternal = "External"

	InstallCChannel = "C-channel"
	InstallEmbedded = "Embedded"
	InstallConduit  = "Conduit"

	MountDirect    = "Direct ceiling"
	MountSuspended = "Suspended"

	SignageProfile = "Profile signs"

	// ManagerPlaceholder is the first manager option and never counts as a choice.
	ManagerPlaceholder = "Select a project manager"
)

var (
	yesNo         = []string{Yes, No}
	systemOptions = []string{SystemUMS, SystemUpsolut}
	ledOptions    = []string{LEDInternal, LEDExternal}
	installOpts   = []string{InstallCChannel, InstallEmbedded, InstallConduit}
	mountOptions  = []string{MountDirect, MountSuspended}

	// DefaultManagers is used when no managers are configured.
	DefaultManagers = []string{"Alex Morgan", "Jordan Lee", "Sam Rivera"}

	// RooftopSensorOptions are the supported open-air detection products.
	RooftopSensorOptions = []string{"UMS outdoor sensor", "Upsolut outdoor sensor", "Camera-based detection"}

	// SignageOptions are the signage families a submittal can include.
	SignageOptions = []string{"Entrance signs", "Directional signs", SignageProfile, "Level totals signs"}

	drawingExts = []string{".pdf", ".dwg", ".dxf"}
	imageExts   = []string{".png", ".jpg", ".jpeg", ".gif"}
)
