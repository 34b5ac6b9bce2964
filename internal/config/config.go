// Package config loads game tuning from defaults and an optional TOML file.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// Dungeon controls level generation.
type Dungeon struct {
	Builder     string `toml:"builder" validate:"required,oneof=simple bsp"`
	Width       int    `toml:"width" validate:"gte=20"`
	Height      int    `toml:"height" validate:"gte=10"`
	MaxRooms    int    `toml:"max_rooms" validate:"gte=1,lte=200"`
	MinRoomSize int    `toml:"min_room_size" validate:"gte=3"`
	MaxRoomSize int    `toml:"max_room_size" validate:"gtefield=MinRoomSize"`
	MaxAttempts int    `toml:"max_attempts" validate:"gte=1"`
	MaxMonsters int    `toml:"max_monsters" validate:"gte=0"`
	MaxItems    int    `toml:"max_items" validate:"gte=0"`
	History     bool   `toml:"history"`
}

// Player holds the starting stats of a new hero.
type Player struct {
	MaxHP     int `toml:"max_hp" validate:"gte=1"`
	Defense   int `toml:"defense" validate:"gte=0"`
	Power     int `toml:"power" validate:"gte=0"`
	RegenRate int `toml:"regen_rate" validate:"gte=0"`
	Sight     int `toml:"sight" validate:"gte=1,lte=64"`
}

// Log configures the diagnostic logger.
type Log struct {
	Level  string `toml:"level" validate:"oneof=trace debug info warn warning error fatal panic"`
	Format string `toml:"format" validate:"oneof=text json"`
}

// Server configures the SSH frontend.
type Server struct {
	Addr    string `toml:"addr" validate:"required"`
	HostKey string `toml:"host_key" validate:"required"`
}

// Config is the full configuration tree.
type Config struct {
	Seed         int64   `toml:"seed"`
	MonsterSight int     `toml:"monster_sight" validate:"gte=1,lte=64"`
	Dungeon      Dungeon `toml:"dungeon"`
	Player       Player  `toml:"player"`
	Log          Log     `toml:"log"`
	Server       Server  `toml:"server"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		MonsterSight: 8,
		Dungeon: Dungeon{
			Builder:     "simple",
			Width:       80,
			Height:      43,
			MaxRooms:    30,
			MinRoomSize: 6,
			MaxRoomSize: 10,
			MaxAttempts: 5,
			MaxMonsters: 4,
			MaxItems:    2,
		},
		Player: Player{
			MaxHP:     30,
			Defense:   2,
			Power:     5,
			RegenRate: 1,
			Sight:     20,
		},
		Log: Log{
			Level:  "warn",
			Format: "text",
		},
		Server: Server{
			Addr:    ":2222",
			HostKey: "host_key",
		},
	}
}

// Load reads path over the defaults. An empty path or a missing file yields
// the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "decode %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks every field constraint and the cross-field rules the tags
// cannot express.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(ErrInvalidConfig, err.Error())
	}
	d := c.Dungeon
	if d.MaxRoomSize+2 > d.Width || d.MaxRoomSize+2 > d.Height {
		return errors.Wrapf(ErrInvalidConfig, "room size %d does not fit a %dx%d map",
			d.MaxRoomSize, d.Width, d.Height)
	}
	return nil
}
