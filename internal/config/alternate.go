package config

// alternate captures keys of the earlier flat layout and the camelCase
// spellings. They only fill settings the current keys leave empty.
type alternate struct {
	DBURL         string            `yaml:"db_url"`
	DatabaseURL   string            `yaml:"databaseUrl"`
	ExcludeTable  []string          `yaml:"exclude_table"`
	ExcludeTables []string          `yaml:"excludeTables"`
	JustTable     []string          `yaml:"just_table"`
	OnlyTables    []string          `yaml:"onlyTables"`
	ReplaceType   map[string]string `yaml:"replace_type"`
	TypeAliases   map[string]string `yaml:"typeAliases"`
	Config        struct {
		Tables map[string]alternateTable `yaml:"tables"`
	} `yaml:"config"`
	Tables map[string]alternateTable `yaml:"tables"`
}

type alternateTable struct {
	Columns map[string]alternateColumn `yaml:"columns"`
}

type alternateColumn struct {
	JSONType             string `yaml:"json_type"`
	WrappedJSONType      string `yaml:"wrappedJsonType"`
	WrappedJSONTypeSnake string `yaml:"wrapped_json_type"`
	CustomType           string `yaml:"customType"`
	CustomTypeSnake      string `yaml:"custom_type"`
}

func (a *alternate) mergeInto(c *Config) {
	c.DatabaseURL = firstString(c.DatabaseURL, a.DatabaseURL, a.DBURL)
	if len(c.ExcludeTables) == 0 {
		c.ExcludeTables = firstSlice(a.ExcludeTables, a.ExcludeTable)
	}
	if len(c.OnlyTables) == 0 {
		c.OnlyTables = firstSlice(a.OnlyTables, a.JustTable)
	}
	if len(c.TypeAliases) == 0 {
		if len(a.TypeAliases) > 0 {
			c.TypeAliases = a.TypeAliases
		} else if len(a.ReplaceType) > 0 {
			c.TypeAliases = a.ReplaceType
		}
	}
	mergeTables(c, a.Tables)
	mergeTables(c, a.Config.Tables)
}

func mergeTables(c *Config, tables map[string]alternateTable) {
	for table, at := range tables {
		for column, ac := range at.Columns {
			if c.Tables == nil {
				c.Tables = make(map[string]TableConfig)
			}
			tc := c.Tables[table]
			if tc.Columns == nil {
				tc.Columns = make(map[string]ColumnConfig)
			}
			cc := tc.Columns[column]
			cc.WrappedJSONType = firstString(cc.WrappedJSONType, ac.WrappedJSONTypeSnake, ac.WrappedJSONType, ac.JSONType)
			cc.CustomType = firstString(cc.CustomType, ac.CustomTypeSnake, ac.CustomType)
			tc.Columns[column] = cc
			c.Tables[table] = tc
		}
	}
}

func firstString(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstSlice(vals ...[]string) []string {
	for _, v := range vals {
		if len(v) > 0 {
			return v
		}
	}
	return nil
}
