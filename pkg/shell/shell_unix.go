//go:build !windows

package shell

func shellCommand(command string) (string, []string) {
	return "sh", []string{"-c", command}
}
