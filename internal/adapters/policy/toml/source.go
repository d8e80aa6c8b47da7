// Package toml persists the routing policy as a TOML document under the
// user's config directory. The file is the operator-facing surface for
// adding modes, languages, instruction templates, and pipeline voices.
package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/sperrin/voiceroute/internal/domain"
	"github.com/sperrin/voiceroute/internal/ports"
	"github.com/spf13/viper"
)

const (
	configName       = "config"
	configType       = "toml"
	policyPathKey    = "policy.path"
	policyFileMode   = 0o600
	policyDirMode    = 0o700
	policyConfigDir  = ".voiceroute"
	policyConfigFile = "policy.toml"
	tempFilePattern  = ".policy-*.toml.tmp"
)

type Source struct {
	policyPath string
	mu         *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.PolicySource = (*Source)(nil)

func NewSource(cfg *viper.Viper) (*Source, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	defaultPath := filepath.Join(homeDir, policyConfigDir, policyConfigFile)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, policyConfigDir))
	cfg.SetDefault(policyPathKey, defaultPath)

	err = cfg.ReadInConfig()
	if err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	policyPath := cfg.GetString(policyPathKey)
	if policyPath == "" {
		return nil, errors.New("policy path is empty")
	}
	policyPath, err = normalizePolicyPath(policyPath)
	if err != nil {
		return nil, err
	}

	return &Source{policyPath: policyPath, mu: lockForPath(policyPath)}, nil
}

// Load reads the policy file. A missing file yields the built-in default
// policy so the supervisor works before `policy init` has ever run.
func (s *Source) Load(ctx context.Context) (domain.RoutingPolicy, error) {
	if err := ctx.Err(); err != nil {
		return domain.RoutingPolicy{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.policyPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultPolicy(), nil
		}
		return domain.RoutingPolicy{}, fmt.Errorf("read policy file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return domain.RoutingPolicy{}, fmt.Errorf("decode policy file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return domain.RoutingPolicy{}, err
	}
	file.applyDefaults()

	return fromSchema(file), nil
}

func (s *Source) Save(ctx context.Context, policy domain.RoutingPolicy) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.writeSchema(toSchema(policy))
}

// Path reports where the policy file lives, for operator-facing output.
func (s *Source) Path() string {
	return s.policyPath
}

func (s *Source) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(s.policyPath), policyDirMode); err != nil {
		return fmt.Errorf("create policy directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode policy file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(s.policyPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp policy file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp policy file: %w", err)
	}

	if err := tempFile.Chmod(policyFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp policy file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp policy file: %w", err)
	}

	if err := os.Rename(tempName, s.policyPath); err != nil {
		return fmt.Errorf("replace policy file: %w", err)
	}

	cleanup = false

	if err := os.Chmod(s.policyPath, policyFileMode); err != nil {
		return fmt.Errorf("chmod policy file: %w", err)
	}

	return nil
}

func normalizePolicyPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve policy path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}
