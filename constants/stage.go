package constants

// Stage names the steps of the extract-and-export pipeline, used in
// structured log events and wrapped errors.
type Stage string

const (
	StageExtract  Stage = "EXTRACT"  // network exchange with the service
	StageParse    Stage = "PARSE"    // structured field recovery
	StageRender   Stage = "RENDER"   // payload rasterization
	StagePaginate Stage = "PAGINATE" // page placement computation
	StageAssemble Stage = "ASSEMBLE" // document bytes
)
