package adapter

import (
	"ScoreSync/internal/config"
	"ScoreSync/internal/interfaces"
	"ScoreSync/internal/model"
	"fmt"

	"github.com/sirupsen/logrus"
)

// PlatformRegistry adapter instances built from config
type PlatformRegistry struct {
	cfg      *config.Config
	failures interfaces.FailureRecorder
	logger   *logrus.Logger
	adapters map[model.Source]interfaces.GameAdapter
}

func NewPlatformRegistry(cfg *config.Config, failures interfaces.FailureRecorder, logger *logrus.Logger) *PlatformRegistry {
	r := &PlatformRegistry{
		cfg:      cfg,
		failures: failures,
		logger:   logger,
		adapters: make(map[model.Source]interfaces.GameAdapter),
	}
	r.initAdaptersFromFactories()
	return r
}

// initAdaptersFromFactories one instance per registered factory; a missing platform section means defaults
func (r *PlatformRegistry) initAdaptersFromFactories() {
	r.logger.WithField("factory_platforms", ListFactories()).Info("registered adapter factories")

	for _, source := range ListFactories() {
		factory, _ := GetFactory(source)
		platformCfg := r.cfg.Platforms[string(source)]
		adapterIns := factory(&platformCfg, &r.cfg.Institution, r.failures, r.logger)
		if adapterIns == nil {
			r.logger.WithField("platform", source).Error("factory returned a nil adapter")
			continue
		}
		if adapterIns.GetType() != source {
			r.logger.WithFields(logrus.Fields{
				"config_platform":  source,
				"adapter_platform": adapterIns.GetType(),
			}).Error("adapter type does not match its registration")
			continue
		}
		r.adapters[source] = adapterIns
		r.logger.WithFields(logrus.Fields{
			"platform": source,
			"sports":   adapterIns.Sports(),
		}).Info("adapter initialized")
	}
}

// Register adds or replaces an adapter instance directly
func (r *PlatformRegistry) Register(a interfaces.GameAdapter) {
	r.adapters[a.GetType()] = a
}

// GetAdapter adapter instance of one provider
func (r *PlatformRegistry) GetAdapter(source model.Source) (interfaces.GameAdapter, error) {
	adapterIns, ok := r.adapters[source]
	if !ok {
		return nil, fmt.Errorf("no adapter initialized for %s (initialized: %v)", source, r.ListRegisteredPlatforms())
	}
	return adapterIns, nil
}

// ListRegisteredPlatforms initialized providers, fixed order
func (r *PlatformRegistry) ListRegisteredPlatforms() []model.Source {
	var sources []model.Source
	for _, s := range knownSources {
		if _, ok := r.adapters[s]; ok {
			sources = append(sources, s)
		}
	}
	return sources
}

// Adapters initialized adapters, fixed order
func (r *PlatformRegistry) Adapters() []interfaces.GameAdapter {
	var list []interfaces.GameAdapter
	for _, s := range r.ListRegisteredPlatforms() {
		list = append(list, r.adapters[s])
	}
	return list
}

// GetPlatformCount number of initialized adapters
func (r *PlatformRegistry) GetPlatformCount() int {
	return len(r.adapters)
}
