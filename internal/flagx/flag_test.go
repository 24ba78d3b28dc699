package flagx

import (
	"os"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "short flag with separate value",
			args:         []string{"-c", "conf.json", "-s", "sheet-id"},
			allowedFlags: []string{"-c", "-config"},
			want:         []string{"-c", "conf.json"},
		},
		{
			name:         "flag with equals",
			args:         []string{"-config=alt.json", "-s", "sheet-id"},
			allowedFlags: []string{"-c", "-config"},
			want:         []string{"-config=alt.json"},
		},
		{
			name:         "unknown flags ignored",
			args:         []string{"-x", "1", "-y=2", "positional"},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
		{
			name:         "flag without value at end is kept",
			args:         []string{"-m"},
			allowedFlags: []string{"-m"},
			want:         []string{"-m"},
		},
		{
			name:         "next dash token is not a value",
			args:         []string{"-b", "-m", "10"},
			allowedFlags: []string{"-b", "-m"},
			want:         []string{"-b", "-m", "10"},
		},
		{
			name:         "repeated flag preserved in order",
			args:         []string{"-b", "one", "-b", "two"},
			allowedFlags: []string{"-b"},
			want:         []string{"-b", "one", "-b", "two"},
		},
		{
			name:         "empty args",
			args:         []string{},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterArgs(tt.args, tt.allowedFlags)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("FilterArgs() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestFilterArgsWithBools(t *testing.T) {
	allowed := []string{"-m", "-sms"}
	bools := []string{"-sms"}

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"separate false", []string{"-sms", "false", "-m", "3"}, []string{"-sms=false", "-m", "3"}},
		{"separate true", []string{"-sms", "true"}, []string{"-sms=true"}},
		{"bare", []string{"-sms", "-m", "3"}, []string{"-sms", "-m", "3"}},
		{"non bool next is left alone", []string{"-sms", "positional"}, []string{"-sms"}},
		{"equals form", []string{"-sms=0"}, []string{"-sms=0"}},
		{"at end", []string{"-m", "3", "-sms"}, []string{"-m", "3", "-sms"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgsWithBools(tt.args, allowed, bools))
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("short -c", func(t *testing.T) {
		os.Args = []string{"cardbot", "-c", "/etc/cardbot.json"}
		assert.Equal(t, "/etc/cardbot.json", JsonConfigFlags())
	})

	t.Run("long -config", func(t *testing.T) {
		os.Args = []string{"cardbot", "-m", "5", "-config", "/etc/cardbot.json"}
		assert.Equal(t, "/etc/cardbot.json", JsonConfigFlags())
	})

	t.Run("absent", func(t *testing.T) {
		os.Args = []string{"cardbot", "-m", "5"}
		assert.Empty(t, JsonConfigFlags())
	})

	t.Run("last wins", func(t *testing.T) {
		os.Args = []string{"cardbot", "-c", "/a.json", "-config", "/b.json"}
		assert.Equal(t, "/b.json", JsonConfigFlags())
	})
}

func TestEnvFileFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"cardbot", "-env", "prod.env", "-c", "x.json"}
	assert.Equal(t, "prod.env", EnvFileFlags())

	os.Args = []string{"cardbot"}
	assert.Empty(t, EnvFileFlags())
}
