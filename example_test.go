// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package strata

import (
	"fmt"
	"strings"

	"github.com/z5labs/strata/schema"
)

func ExampleNew() {
	s := schema.MustNew(func(b *schema.Builder) {
		b.Setting("one")
		b.Config("two", schema.Define(func(b *schema.Builder) {
			b.Setting("three")
			b.Config("four", schema.Define(func(b *schema.Builder) {
				b.Setting("five", schema.Default("five"))
			}))
		}))
	})

	cfg := New(s)

	v, err := cfg.Get("two.four.five")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(v)
	// Output: five
}

func ExampleConfig_Load() {
	s := schema.MustNew(func(b *schema.Builder) {
		b.Config("server", schema.Define(func(b *schema.Builder) {
			b.Setting("host", schema.Default("localhost"))
			b.Setting("port", schema.Default(8080))
		}))
	})

	cfg := New(s)
	err := cfg.Load(FromYaml(strings.NewReader(`
server:
  port: 9090
`)))
	if err != nil {
		fmt.Println(err)
		return
	}

	host, err := cfg.String("server.host")
	if err != nil {
		fmt.Println(err)
		return
	}
	port, err := cfg.Int("server.port")
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(host, port)
	// Output: localhost 9090
}

func ExampleConfig_Assigns() {
	s := schema.MustNew(func(b *schema.Builder) {
		b.Setting("data_dir", schema.Default("%{home}/data"))
	})

	cfg := New(s)
	cfg.Assigns()["home"] = "/var/app"

	v, err := cfg.Get("data_dir")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(v)
	// Output: /var/app/data
}

func ExampleConfig_Unmarshal() {
	s := schema.MustNew(func(b *schema.Builder) {
		b.Template("database", func(b *schema.Builder) {
			b.Setting("host", schema.Default("localhost"))
			b.Setting("port", schema.Default(5432))
		})
		b.Config("primary", schema.FromTemplate("database"))
		b.Config("replica", schema.FromTemplate("database"), schema.Define(func(b *schema.Builder) {
			b.Setting("read_only", schema.Default(true))
		}))
	})

	cfg := New(s)

	var out struct {
		Primary struct {
			Host string `config:"host"`
			Port int    `config:"port"`
		} `config:"primary"`
		Replica struct {
			Host     string `config:"host"`
			ReadOnly bool   `config:"read_only"`
		} `config:"replica"`
	}
	err := cfg.Unmarshal(&out)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(out.Primary.Host, out.Primary.Port, out.Replica.ReadOnly)
	// Output: localhost 5432 true
}
