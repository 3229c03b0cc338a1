// Package config provides configuration parsing for vbridge.
//
// The configuration is stored in vbridge.json in the working directory.
// Every field is optional:
//
//	{
//	  "port": 4700,
//	  "host": "localhost",
//	  "logLevel": "info",
//	  "unmountPolicy": "drop",
//	  "metrics": {
//	    "enabled": true,
//	    "namespace": "vbridge"
//	  },
//	  "render": {
//	    "pretty": true,
//	    "indent": "  "
//	  }
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
