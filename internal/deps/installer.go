package deps

import (
	"context"
	"strconv"
	"strings"

	"github.com/solwire/cli/internal/detect"
	"github.com/solwire/cli/internal/errors"
	"github.com/solwire/cli/internal/exec"
	"github.com/solwire/cli/internal/output"
)

// Installer runs the host package manager. The runner is an interface so
// tests can stub the process without npm on the machine.
type Installer struct {
	Runner exec.CommandRunner
	Log    output.Logger
}

func NewInstaller(runner exec.CommandRunner, log output.Logger) *Installer {
	return &Installer{Runner: runner, Log: log}
}

// InstallArgs builds the argv for one install invocation.
func InstallArgs(pm detect.PackageManager, pkgs []Package, dev bool) (string, []string) {
	specs := make([]string, 0, len(pkgs))
	for _, p := range pkgs {
		specs = append(specs, p.Spec())
	}

	switch pm {
	case detect.PMYarn:
		args := []string{"add"}
		if dev {
			args = append(args, "--dev")
		}
		return "yarn", append(args, specs...)
	case detect.PMPnpm:
		args := []string{"add"}
		if dev {
			args = append(args, "--save-dev")
		}
		return "pnpm", append(args, specs...)
	case detect.PMBun:
		args := []string{"add"}
		if dev {
			args = append(args, "--dev")
		}
		return "bun", append(args, specs...)
	default:
		args := []string{"install"}
		if dev {
			args = append(args, "--save-dev")
		}
		return "npm", append(args, specs...)
	}
}

// Install adds the packages to the project, runtime dependencies first, then
// devDependencies. It blocks until the package manager exits; patch steps
// must not run before the install finishes. A non-zero exit becomes an
// ErrInstall with the stderr tail attached.
func (i *Installer) Install(ctx context.Context, pm detect.PackageManager, projectDir string, pkgs []Package) error {
	var run, dev []Package
	for _, p := range pkgs {
		if p.Dev {
			dev = append(dev, p)
		} else {
			run = append(run, p)
		}
	}

	for _, batch := range []struct {
		pkgs []Package
		dev  bool
	}{{run, false}, {dev, true}} {
		if len(batch.pkgs) == 0 {
			continue
		}
		name, args := InstallArgs(pm, batch.pkgs, batch.dev)
		i.Log.Debug("running package manager", "cmd", name, "args", strings.Join(args, " "), "dir", projectDir)

		res, err := i.Runner.Run(ctx, name, args, exec.RunOpts{Dir: projectDir})
		if err != nil {
			return errors.WrapInstall(err, "run "+name)
		}
		if res.ExitCode != 0 {
			i.Log.Debug("package manager failed", "stderr", res.Stderr)
			return errors.NewInstallError(
				name+" exited with code "+strconv.Itoa(res.ExitCode),
				map[string]string{
					"command": name + " " + strings.Join(args, " "),
					"stderr":  tail(res.Stderr, 400),
				},
				"Run the command manually in the project directory to see the full output",
			)
		}
	}
	return nil
}

// tail keeps the last n bytes of s, trimmed.
func tail(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return "..." + s[len(s)-n:]
}
