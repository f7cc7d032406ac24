/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package main is the entry point for starting the markup server.
package main

import (
	"crypto/tls"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"path"
	"time"

	"github.com/asgardeo/markupgen/internal/system/cert"
	"github.com/asgardeo/markupgen/internal/system/config"
	"github.com/asgardeo/markupgen/internal/system/constants"
	"github.com/asgardeo/markupgen/internal/system/database/migration"
	"github.com/asgardeo/markupgen/internal/system/database/provider"
	"github.com/asgardeo/markupgen/internal/system/log"
)

func main() {
	logger := log.GetLogger()
	defer logger.Sync()

	serverHome := getServerHome(logger)

	cfg := initConfigurations(logger, serverHome)
	if cfg == nil {
		logger.Fatal("Failed to initialize configurations")
	}

	dbProvider := initDatabase(logger)

	mux := initMultiplexer(dbProvider)

	if cfg.Server.HTTPOnly {
		logger.Info("TLS is not enabled, starting server without TLS")
		startHTTPServer(logger, cfg, mux)
	} else {
		startTLSServer(logger, cfg, mux, serverHome)
	}
}

// getServerHome retrieves and returns the server home directory.
func getServerHome(logger *log.Logger) string {
	serverHome := ""
	serverHomeFlag := flag.String("home", "", "Path to the markup server home directory")
	flag.Parse()

	if *serverHomeFlag != "" {
		logger.Info("Using server home from command line argument", log.String("home", *serverHomeFlag))
		serverHome = *serverHomeFlag
	} else {
		// If no command line argument is provided, use the current working directory.
		dir, dirErr := os.Getwd()
		if dirErr != nil {
			logger.Fatal("Failed to get current working directory", log.Error(dirErr))
		}
		serverHome = dir
	}

	return serverHome
}

// initConfigurations loads the deployment configuration and initializes the server runtime.
func initConfigurations(logger *log.Logger, serverHome string) *config.Config {
	configFilePath := path.Join(serverHome, constants.DeploymentConfigRelativePath)
	cfg, err := config.LoadConfig(configFilePath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Fatal("Failed to load configurations", log.Error(err))
		}
		logger.Warn("Deployment configuration not found, using defaults", log.String("path", configFilePath))
		cfg = config.DefaultConfig()
	}

	if err := config.InitializeServerRuntime(serverHome, cfg); err != nil {
		logger.Fatal("Failed to initialize server runtime", log.Error(err))
	}

	return cfg
}

// initDatabase opens the markup database and applies the schema migrations.
func initDatabase(logger *log.Logger) provider.DBProviderInterface {
	dbProvider := provider.GetDBProvider()
	dbClient, err := dbProvider.GetDBClient(provider.MarkupDB)
	if err != nil {
		logger.Fatal("Failed to connect to the markup database", log.Error(err))
	}
	if err := migration.Migrate(dbClient); err != nil {
		logger.Fatal("Failed to migrate the markup database", log.Error(err))
	}
	return dbProvider
}

// initMultiplexer initializes the HTTP multiplexer and registers the services.
func initMultiplexer(dbProvider provider.DBProviderInterface) *http.ServeMux {
	mux := http.NewServeMux()
	registerServices(mux, dbProvider)
	return mux
}

// startTLSServer starts the HTTPS server with TLS configuration.
func startTLSServer(logger *log.Logger, cfg *config.Config, mux *http.ServeMux, serverHome string) {
	server, serverAddr := createHTTPServer(logger, cfg, mux)

	tlsConfig, err := cert.GetTLSConfig(cfg.Security, serverHome)
	if err != nil {
		logger.Fatal("Failed to load TLS configuration", log.Error(err))
	}
	if logger.IsDebugEnabled() {
		if thumbprint, err := cert.Thumbprint(tlsConfig); err == nil {
			logger.Debug("Loaded server certificate", log.String("x5t#S256", thumbprint))
		}
	}

	ln, err := tls.Listen("tcp", serverAddr, tlsConfig)
	if err != nil {
		logger.Fatal("Failed to start TLS listener", log.Error(err))
	}

	logger.Info("Markup server started (HTTPS)...", log.String("address", serverAddr))

	if err := server.Serve(ln); err != nil {
		logger.Fatal("Failed to serve requests", log.Error(err))
	}
}

// startHTTPServer starts the HTTP server without TLS.
func startHTTPServer(logger *log.Logger, cfg *config.Config, mux *http.ServeMux) {
	server, serverAddr := createHTTPServer(logger, cfg, mux)

	logger.Info("Markup server started (HTTP)...", log.String("address", serverAddr))

	if err := server.ListenAndServe(); err != nil {
		logger.Fatal("Failed to serve HTTP requests", log.Error(err))
	}
}

// createHTTPServer creates and configures an HTTP server with common settings.
func createHTTPServer(logger *log.Logger, cfg *config.Config, mux *http.ServeMux) (*http.Server, string) {
	wrappedMux := log.AccessLogHandler(logger, mux)

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Hostname, cfg.Server.Port)

	server := &http.Server{
		Addr:              serverAddr,
		Handler:           wrappedMux,
		ReadHeaderTimeout: 10 * time.Second, // Mitigate Slowloris attacks
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return server, serverAddr
}
