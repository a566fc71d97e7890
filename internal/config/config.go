package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	Database  Database  `mapstructure:",squash"`
	Pipedrive Pipedrive `mapstructure:",squash"`
	Auth      Auth      `mapstructure:",squash"`
	Goals     Goals     `mapstructure:",squash"`
	GoalsSync GoalsSync `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Pipedrive struct {
	URL      string `mapstructure:"pipedrive_url"`
	APIToken string `mapstructure:"pipedrive_api_token"`

	// Claves hash de los campos personalizados del CRM. Pipedrive expone los
	// campos custom con una clave generada, no con el nombre visible.
	FeeMensualFieldKey string `mapstructure:"pipedrive_fee_mensual_field_key"`
	QuarterFieldKey    string `mapstructure:"pipedrive_quarter_field_key"`
	MapacheFieldKey    string `mapstructure:"pipedrive_mapache_field_key"`

	PageLimit int `mapstructure:"pipedrive_page_limit"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret          string `mapstructure:"auth_secret"`
	TokenTTLMinutes int    `mapstructure:"auth_token_ttl_minutes"`
}

type Goals struct {
	// MapacheTeams son los equipos cuyas operaciones se atribuyen por el
	// campo "mapache asignado" en lugar del email del dueño. Mapeo explícito
	// por configuración: un equipo nuevo que no figure acá usa atribución
	// por email.
	MapacheTeams []string `mapstructure:"goals_mapache_teams"`

	CacheTTLSeconds     int `mapstructure:"goals_cache_ttl_seconds"`
	TeamCacheTTLSeconds int `mapstructure:"goals_team_cache_ttl_seconds"`
}

type GoalsSync struct {
	CronSchedule string `mapstructure:"goals_sync_cron"`
	Enabled      bool   `mapstructure:"goals_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/salesops")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("PIPEDRIVE_URL", "https://api.pipedrive.com/v1")
	viper.SetDefault("PIPEDRIVE_API_TOKEN", "your_api_token") // ONLY LOCAL
	viper.SetDefault("PIPEDRIVE_FEE_MENSUAL_FIELD_KEY", "")
	viper.SetDefault("PIPEDRIVE_QUARTER_FIELD_KEY", "")
	viper.SetDefault("PIPEDRIVE_MAPACHE_FIELD_KEY", "")
	viper.SetDefault("PIPEDRIVE_PAGE_LIMIT", 500)

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_TOKEN_TTL_MINUTES", 480)

	viper.SetDefault("GOALS_MAPACHE_TEAMS", "Mapaches,Mapache")
	viper.SetDefault("GOALS_CACHE_TTL_SECONDS", 60)       // lookups interactivos "mis operaciones"
	viper.SetDefault("GOALS_TEAM_CACHE_TTL_SECONDS", 600) // rollups por equipo, menos sensibles a latencia

	// Defaults del refresco programado de snapshots
	viper.SetDefault("GOALS_SYNC_CRON", "0 7 * * *") // Todos los días a las 7 de la mañana
	viper.SetDefault("GOALS_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primero cargar el archivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variables cargadas por godotenv (viper no pudo leer .env):", err)
	} else {
		logrus.Info("Archivo .env leído por viper con éxito")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// IsMapacheTeam decide el modo de atribución de un equipo: los equipos de la
// lista usan el campo "mapache asignado", el resto el email del dueño.
func (g Goals) IsMapacheTeam(team *string) bool {
	if team == nil {
		return false
	}
	for _, t := range g.MapacheTeams {
		if strings.EqualFold(strings.TrimSpace(t), strings.TrimSpace(*team)) {
			return true
		}
	}
	return false
}

func (g Goals) CacheTTL() time.Duration {
	return time.Duration(g.CacheTTLSeconds) * time.Second
}

func (g Goals) TeamCacheTTL() time.Duration {
	return time.Duration(g.TeamCacheTTLSeconds) * time.Second
}

// Función auxiliar para cargar el archivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("No se pudo obtener el directorio actual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Archivo .env cargado con éxito desde:", location)
			return
		}
	}

	logrus.Warn("No se pudo cargar el archivo .env desde ninguna ubicación conocida")
}
