// Package config loads YAML-defined environments and named request
// descriptions, assembling them into core request values.
//
// Example configuration:
//
//	environments:
//	  staging:
//	    baseUrl: https://staging.example.com
//	    headers:
//	      X-Env: staging
//	requests:
//	  createUser:
//	    method: POST
//	    path: /users
//	    headers:
//	      Accept: application/json
//	    params:
//	      name: John
//	    encoding: json
package config
