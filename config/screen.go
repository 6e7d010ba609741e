package config

// Screen layout configuration
const (
	// Tile size in pixels; path points snap to tile centres
	TileSize = 16

	// Arena dimensions in pixels
	ScreenWidth  = 1280
	ScreenHeight = 720

	// Arena dimensions in tiles
	TilesWide = ScreenWidth / TileSize
	TilesHigh = ScreenHeight / TileSize

	// Terminal frontend: world pixels per terminal cell
	CellWidth  = 16
	CellHeight = 32
)

// Motion tuning
const (
	// PathSpeed is how fast an entity travels along its path, in pixels per second
	PathSpeed = 160.0

	// PathArrivalRadius is the distance at which a path point counts as reached
	PathArrivalRadius = 2.0
)

// GetScreenDimensions returns the logical screen dimensions in pixels
func GetScreenDimensions() (width, height int) {
	return ScreenWidth, ScreenHeight
}

// GetWindowSize returns the recommended window size (may be different from actual screen dimensions)
func GetWindowSize() (width, height int) {
	return ScreenWidth, ScreenHeight
}
