package config

// Storage drivers.
const (
	DriverCSV    = "csv"
	DriverSQLite = "sqlite"
)

// Config is the root application configuration.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Catalog CatalogConfig `yaml:"catalog"`
	UI      UIConfig      `yaml:"ui"`
	Log     LogConfig     `yaml:"log"`
}

// StorageConfig selects where the catalog is persisted.
type StorageConfig struct {
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"csv"`
	Path   string `yaml:"path"   env:"STORAGE_PATH"   env-default:"countries.csv"`
}

// CatalogConfig holds record limits and lookup behaviour.
type CatalogConfig struct {
	NameMaxLength      int `yaml:"name_max_length"      env:"CATALOG_NAME_MAX_LENGTH"      env-default:"80"`
	ContinentMaxLength int `yaml:"continent_max_length" env:"CATALOG_CONTINENT_MAX_LENGTH" env-default:"50"`
	// SelectionAttempts is how many invalid choices are tolerated when a
	// name matches several records.
	SelectionAttempts int `yaml:"selection_attempts" env:"CATALOG_SELECTION_ATTEMPTS" env-default:"1"`
}

// UIConfig holds console presentation settings.
type UIConfig struct {
	ClearScreen bool `yaml:"clear_screen" env:"UI_CLEAR_SCREEN" env-default:"true"`
	MenuWidth   int  `yaml:"menu_width"   env:"UI_MENU_WIDTH"   env-default:"62"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"warn"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
	// File appends logs to the given path instead of stderr.
	File string `yaml:"file" env:"LOG_FILE"`
}
