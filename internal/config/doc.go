// Package config loads showcase.json (or showcase.yaml).
//
// # Configuration File Structure
//
//	{
//	  "name": "showcase",
//	  "variant": "rich",
//	  "server": {"host": "localhost", "port": 3000, "shutdownTimeout": "10s"},
//	  "toast": {"delay": "3s"},
//	  "assets": {"tailwindCDN": "https://cdn.tailwindcss.com", "favicon": "/favicon.ico"},
//	  "catalog": "catalog.yaml",
//	  "metrics": {"enabled": true, "namespace": "showcase"},
//	  "tracing": {"enabled": false},
//	  "publish": {"bucket": "my-site", "key": "index.html", "region": "us-east-1"}
//	}
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Listening on", cfg.Address())
package config
