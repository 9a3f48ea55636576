package server

import (
	"sync"

	"github.com/sirupsen/logrus"

	"kalaa-saarathi-api/internal/config"
	"kalaa-saarathi-api/pkg/lambda"
)

// ContainerManager keeps one container per Lambda execution environment so
// warm invocations skip configuration and router setup.
type ContainerManager struct {
	once      sync.Once
	container *Container
	initErr   error
	loadCfg   func() (*config.Config, error)
}

var (
	globalManager *ContainerManager
	managerOnce   sync.Once
)

// GetContainerManager returns the process-wide container manager
func GetContainerManager() *ContainerManager {
	managerOnce.Do(func() {
		globalManager = NewContainerManager(config.GetOptimizedConfig)
	})
	return globalManager
}

// NewContainerManager creates a manager that builds its container from loadCfg
func NewContainerManager(loadCfg func() (*config.Config, error)) *ContainerManager {
	return &ContainerManager{loadCfg: loadCfg}
}

// GetContainer returns the container, building it on first use. A failed
// build is remembered; the execution environment has to be recycled.
func (m *ContainerManager) GetContainer() (*Container, error) {
	m.once.Do(func() {
		cfg, err := m.loadCfg()
		if err != nil {
			m.initErr = err
			return
		}

		container, err := NewContainer(cfg)
		if err != nil {
			m.initErr = err
			return
		}

		m.container = container
	})

	if m.initErr != nil {
		return nil, m.initErr
	}

	return m.container, nil
}

// ServeFunction starts the Lambda runtime for one named route, or for the
// whole router when name is empty. It does not return.
func ServeFunction(name string) {
	container, err := GetContainerManager().GetContainer()
	if err != nil {
		panic("Failed to initialize container: " + err.Error())
	}

	h, err := container.Handler(name)
	if err != nil {
		panic("Failed to resolve handler: " + err.Error())
	}

	container.Logger.WithFields(logrus.Fields{
		"route":    name,
		"function": config.GetServerlessConfig().FunctionName,
	}).Info("Lambda function ready")

	lambda.Start(container.Logger, h)
}
