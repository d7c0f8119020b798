package verify

// Config holds configuration for a verification run.
type Config struct {
	// LocalImage is the path of the generated fixture, relative to the working directory.
	LocalImage string `mapstructure:"local_image" default:"test_1x1_pixel.png"`
	// Strict makes a failed run surface as a command error.
	Strict bool `mapstructure:"strict" default:"false"`
}
