package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	AppName            = "studytrack"
	DefaultStudentName = "Student"
	DefaultHTTPAddr    = "127.0.0.1:8787"
	DocumentName       = "student_data.json"
	ConfigName         = "config.yaml"
)

type Config struct {
	DataDir     string
	DocPath     string
	DBPath      string
	JournalDir  string
	ReportsDir  string
	StudentName string
	Journal     bool
	LogMode     string
	HTTPAddr    string
}

// Overrides carries values supplied on the command line. Empty fields fall
// through to the environment, then the config file, then defaults.
type Overrides struct {
	DataDir     string
	ConfigPath  string
	StudentName string
	LogMode     string
}

type fileConfig struct {
	Student    string `yaml:"student"`
	Journal    *bool  `yaml:"journal"`
	ReportsDir string `yaml:"reports_dir"`
	Log        string `yaml:"log"`
	Addr       string `yaml:"addr"`
}

func New(dataDir string) (Config, error) {
	if strings.TrimSpace(dataDir) == "" {
		return Config{}, fmt.Errorf("data dir is required")
	}
	return Config{
		DataDir:     dataDir,
		DocPath:     filepath.Join(dataDir, DocumentName),
		DBPath:      filepath.Join(dataDir, AppName+".db"),
		JournalDir:  filepath.Join(dataDir, "journal"),
		ReportsDir:  filepath.Join(dataDir, "reports"),
		StudentName: DefaultStudentName,
		HTTPAddr:    DefaultHTTPAddr,
	}, nil
}

// LoadDotenv loads KEY=VALUE files into the process environment without
// overriding variables that are already set. Missing files are skipped.
func LoadDotenv(paths ...string) error {
	for _, path := range paths {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
	}
	return nil
}

func Load(o Overrides) (Config, error) {
	dataDir := firstNonEmpty(o.DataDir, os.Getenv("STUDYTRACK_DATA_DIR"), DataDir(AppName))
	cfg, err := New(dataDir)
	if err != nil {
		return Config{}, err
	}

	configPath := firstNonEmpty(o.ConfigPath, os.Getenv("STUDYTRACK_CONFIG"), filepath.Join(dataDir, ConfigName))
	file, err := readFile(configPath, o.ConfigPath != "")
	if err != nil {
		return Config{}, err
	}
	if file.Student != "" {
		cfg.StudentName = file.Student
	}
	if file.Journal != nil {
		cfg.Journal = *file.Journal
	}
	if file.ReportsDir != "" {
		cfg.ReportsDir = file.ReportsDir
	}
	if file.Addr != "" {
		cfg.HTTPAddr = file.Addr
	}
	cfg.LogMode = file.Log

	if v := os.Getenv("STUDYTRACK_STUDENT"); v != "" {
		cfg.StudentName = v
	}
	if v := os.Getenv("STUDYTRACK_JOURNAL"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("STUDYTRACK_JOURNAL: %w", err)
		}
		cfg.Journal = enabled
	}
	if v := os.Getenv("STUDYTRACK_LOG"); v != "" {
		cfg.LogMode = v
	}
	if v := os.Getenv("STUDYTRACK_ADDR"); v != "" {
		cfg.HTTPAddr = v
	}

	if o.StudentName != "" {
		cfg.StudentName = o.StudentName
	}
	if o.LogMode != "" {
		cfg.LogMode = o.LogMode
	}
	return cfg, nil
}

func readFile(path string, required bool) (fileConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return fileConfig{}, nil
		}
		return fileConfig{}, fmt.Errorf("read config: %w", err)
	}
	out := fileConfig{}
	if err := yaml.Unmarshal(raw, &out); err != nil {
		return fileConfig{}, fmt.Errorf("decode config %s: %w", path, err)
	}
	return out, nil
}

// DataDir resolves the per-user data directory for app.
func DataDir(app string) string {
	if base := strings.TrimSpace(os.Getenv("XDG_DATA_HOME")); base != "" {
		return filepath.Join(base, app)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".", app)
	}
	return filepath.Join(home, ".local", "share", app)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
