// internal/adapter/adapter.go
package adapter

import (
	"ScoreSync/internal/config"
	"ScoreSync/internal/interfaces"
	"ScoreSync/internal/model"
	"fmt"

	"github.com/sirupsen/logrus"
)

// ========== global factory registry, filled by each adapter package's init ==========
var factoryRegistry = make(map[model.Source]Factory)

// Factory builds one provider adapter.
// Inputs: the provider's platform config, the tracked institution, the failure recorder and the logger.
type Factory func(cfg *config.PlatformConfig, institution *config.InstitutionConfig, failures interfaces.FailureRecorder, logger *logrus.Logger) interfaces.GameAdapter

// Register called from adapter init functions
func Register(source model.Source, factory Factory) {
	if factory == nil {
		panic(fmt.Sprintf("factory for %s must not be nil", source))
	}
	if _, exists := factoryRegistry[source]; exists {
		logrus.Warnf("adapter for %s already registered, replacing it", source)
	}
	factoryRegistry[source] = factory
}

// GetFactory factory of one provider
func GetFactory(source model.Source) (Factory, bool) {
	factory, ok := factoryRegistry[source]
	return factory, ok
}

// ListFactories providers with a registered factory, in a fixed order
func ListFactories() []model.Source {
	var sources []model.Source
	for _, s := range knownSources {
		if _, ok := factoryRegistry[s]; ok {
			sources = append(sources, s)
		}
	}
	return sources
}

// knownSources fixed provider order used for fan-out and reporting
var knownSources = []model.Source{model.SourceESPN, model.SourceNCAA}
