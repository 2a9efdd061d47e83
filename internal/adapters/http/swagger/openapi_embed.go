package swagger

import _ "embed"

// OpenAPI holds the embedded spec served at /openapi.yaml.
//
//go:embed openapi.yaml
var OpenAPI []byte
