// Package config loads the cosmos-docs configuration.
//
// The configuration lives in cosmos.json, cosmos.yaml or cosmos.yml in the
// working directory. Every field is optional; missing values take the
// defaults of New.
//
// # Configuration File Structure
//
//	site:
//	  title: COSMOS
//	  lang: es
//	  sidebar:
//	    - title: Entradas
//	      previews: [button, select, switch]
//	server:
//	  host: localhost
//	  port: 3000
//	  devMode: false
//	  maxSessions: 500
//	  readTimeout: 60s
//	  writeTimeout: 10s
//	  metricsPath: /metrics
//	theme:
//	  default: light
//	export:
//	  dir: dist/previews
//	  s3:
//	    bucket: cosmos-docs
//	    prefix: previews/
//	    region: eu-west-1
//	log:
//	  level: info
//	  format: text
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Address:", cfg.Address())
package config
