package completion

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func getTestCompletionData() *Data {
	data := NewData()
	data.AddCommand("greet", "Greets someone")
	data.AddCommand("db", "Database maintenance")
	data.AddCommand("db migrate", "Runs migrations")
	data.AddCommand("db seed", "Loads a fixture")
	data.AddFlag("greet", "--count", "How many times")
	data.AddFlag("greet", "-c", "How many times")
	data.AddFlag("db migrate", "--dry-run", "Don't change anything")
	data.AddValues("db seed", "users", "orders")

	return data
}

func TestData_Children(t *testing.T) {
	data := getTestCompletionData()

	tests := []struct {
		path string
		want []Entry
	}{
		{"", []Entry{{"greet", "Greets someone"}, {"db", "Database maintenance"}}},
		{"db", []Entry{{"migrate", "Runs migrations"}, {"seed", "Loads a fixture"}}},
		{"greet", nil},
	}

	for _, tt := range tests {
		if got := data.Children(tt.path); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Children(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestData_Paths(t *testing.T) {
	got := getTestCompletionData().Paths()
	want := []string{"", "db", "db migrate", "db seed", "greet"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Paths() = %v, want %v", got, want)
	}
}

func TestBashCompletion(t *testing.T) {
	result := (&BashGenerator{}).Generate("my-app", getTestCompletionData())

	expectations := []string{
		"__my_app_completion() {",
		`            '') candidates='greet db' ;;`,
		`            'db') candidates='migrate seed' ;;`,
		`            'db seed') candidates='users orders' ;;`,
		`            'greet') candidates='--count -c' ;;`,
		`            'db migrate') candidates='--dry-run' ;;`,
		"complete -F __my_app_completion my-app",
	}

	for _, expected := range expectations {
		if !strings.Contains(result, expected) {
			t.Errorf("Expected bash completion to contain %q\n%s", expected, result)
		}
	}
}

func TestZshCompletion(t *testing.T) {
	result := (&ZshGenerator{}).Generate("my-app", getTestCompletionData())

	expectations := []string{
		"#compdef my-app",
		`            '') candidates=('greet:Greets someone' 'db:Database maintenance') ;;`,
		`            'db migrate') candidates=('--dry-run:Don'\''t change anything') ;;`,
		`            'db seed') candidates=('users' 'orders') ;;`,
		"compdef __my_app_completion my-app",
	}

	for _, expected := range expectations {
		if !strings.Contains(result, expected) {
			t.Errorf("Expected zsh completion to contain %q\n%s", expected, result)
		}
	}
}

func TestFishCompletion(t *testing.T) {
	result := (&FishGenerator{}).Generate("my-app", getTestCompletionData())

	expectations := []string{
		"function __my_app_at",
		"complete -c my-app -f\n",
		`complete -c my-app -n '__my_app_at ""' -a 'greet' -d 'Greets someone'`,
		`complete -c my-app -n '__my_app_at "db"' -a 'seed' -d 'Loads a fixture'`,
		`complete -c my-app -n '__my_app_at "greet"' -l count -d 'How many times'`,
		`complete -c my-app -n '__my_app_at "greet"' -s c -d 'How many times'`,
		`complete -c my-app -n '__my_app_at "db migrate"' -l dry-run -d 'Don\'t change anything'`,
		`complete -c my-app -n '__my_app_at "db seed"' -a 'orders'`,
	}

	for _, expected := range expectations {
		if !strings.Contains(result, expected) {
			t.Errorf("Expected fish completion to contain %q\n%s", expected, result)
		}
	}
}

func TestGetGenerator(t *testing.T) {
	for _, shell := range Shells() {
		if _, err := GetGenerator(shell); err != nil {
			t.Errorf("GetGenerator(%q) returned %v", shell, err)
		}
	}

	if _, err := GetGenerator("powershell"); !errors.Is(err, ErrUnsupportedShell) {
		t.Errorf("GetGenerator(powershell) = %v, want ErrUnsupportedShell", err)
	}

	if got, want := Shells(), []string{"bash", "fish", "zsh"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Shells() = %v, want %v", got, want)
	}
}
