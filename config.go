package homeassistant

import "context"

// UnitSystem describes the measurement units configured on the instance.
type UnitSystem struct {
	Length      string `json:"length"`
	Mass        string `json:"mass"`
	Temperature string `json:"temperature"`
	Volume      string `json:"volume"`
}

// Config is the response of the /api/config endpoint.
type Config struct {
	Components            []string   `json:"components"`
	ConfigDir             string     `json:"config_dir"`
	Elevation             int        `json:"elevation"`
	Latitude              float64    `json:"latitude"`
	Longitude             float64    `json:"longitude"`
	LocationName          string     `json:"location_name"`
	TimeZone              string     `json:"time_zone"`
	UnitSystem            UnitSystem `json:"unit_system"`
	Version               string     `json:"version"`
	WhitelistExternalDirs []string   `json:"whitelist_external_dirs"`
}

// CheckConfig is the response of the /api/config/core/check_config endpoint.
type CheckConfig struct {
	// Result is "valid" or "invalid".
	Result string `json:"result"`

	// Errors holds the validation failure when Result is "invalid".
	Errors *string `json:"errors"`
}

// Valid reports whether the configuration check passed.
func (c *CheckConfig) Valid() bool {
	return c.Result == "valid"
}

// GetConfig calls the /api/config endpoint, which returns the current
// configuration of the instance.
func (c *Client) GetConfig(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := c.getJSON(ctx, "/api/config", nil, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// CheckConfig calls the /api/config/core/check_config endpoint, which
// triggers a validation of the current configuration files.
func (c *Client) CheckConfig(ctx context.Context) (*CheckConfig, error) {
	var result CheckConfig
	if err := c.postJSON(ctx, "/api/config/core/check_config", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
