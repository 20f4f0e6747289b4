package database

// Config holds configuration for the database connection.
type Config struct {
	// Driver is the database driver (sqlite or mysql). SQLite is the
	// default for a single-user local installation.
	Driver string `mapstructure:"driver" default:"sqlite"`
	// Path is the SQLite database file. Only used with the sqlite driver.
	Path string `mapstructure:"path" default:"bloom.db"`
	// Host is the database host. Only used with the mysql driver.
	Host string `mapstructure:"host" default:"localhost"`
	// Port is the database port.
	Port int `mapstructure:"port" default:"3306"`
	// User is the database user.
	User string `mapstructure:"user" default:"root"`
	// Password is the database password.
	Password string `mapstructure:"password" default:""`
	// Name is the database name.
	Name string `mapstructure:"name" default:"bloom"`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
