//go:build mage
// +build mage

package main

import (
	"archive/zip"
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

var LINUX_BIN = "bottomnav"
var LINUX_ARCHIVE = "bottomnav-linux.tar.xz"
var WINDOWS_BIN = "bottomnav.exe"
var WINDOWS_ARCHIVE = "bottomnav-windows.zip"
var ANDROID_APK = "bottomnav.apk"
var APPID = "ht.sr.whereswaldon.bottomnav"

var Aliases = map[string]interface{}{
	"c": Clean,
	"l": Linux,
	"w": Windows,
	"a": Android,
	"t": Test,
}

func goFlags(platform string) string {
	return "-ldflags=-X=main.Version=" + embeddedVersion() + " " + platformFlags(platform)
}

func platformFlags(platform string) string {
	switch platform {
	case "windows":
		return "-ldflags=-H=windowsgui"
	default:
		return ""
	}
}

func embeddedVersion() string {
	gitVersion, err := sh.Output("git", "describe", "--tags", "--dirty", "--always")
	if err != nil {
		return "git"
	}
	return gitVersion
}

// Build all binary targets
func All() {
	mg.Deps(Linux, Windows, Android)
}

// Run the test suite
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Build for specific platforms with a given binary name.
func BuildFor(platform, binary string) error {
	_, err := sh.Exec(map[string]string{"GOOS": platform, "GOFLAGS": goFlags(platform)},
		os.Stdout, os.Stderr, "go", "build", "-o", binary, ".")
	if err != nil {
		return err
	}
	return nil
}

// Build Linux
func LinuxBin() error {
	return BuildFor("linux", LINUX_BIN)
}

// Build Linux and archive/compress binary
func Linux() error {
	mg.Deps(LinuxBin)
	return sh.Run("tar", "-cJf", LINUX_ARCHIVE, LINUX_BIN)
}

// Build Windows
func WindowsBin() error {
	platform := "windows"
	_, err := sh.Exec(map[string]string{"GOFLAGS": goFlags(platform)},
		os.Stdout, os.Stderr, "go", "run", "gioui.org/cmd/gogio", "-x", "-target", "windows", "-o", WINDOWS_BIN, ".")
	if err != nil {
		return err
	}
	return nil
}

// Build Windows binary and zip it up
func Windows() error {
	mg.Deps(WindowsBin)
	file, err := os.Create(WINDOWS_ARCHIVE)
	if err != nil {
		return err
	}
	defer file.Close()
	zipWriter := zip.NewWriter(file)
	f, err := zipWriter.Create(WINDOWS_BIN)
	if err != nil {
		return err
	}
	body, err := os.ReadFile(WINDOWS_BIN)
	if err != nil {
		return err
	}
	_, err = f.Write(body)
	if err != nil {
		return err
	}
	return zipWriter.Close()
}

// Build an Android APK. The app draws edge to edge, so the system
// navigation inset puts the bar in translucent mode.
func Android() error {
	return sh.RunV("go", "run", "gioui.org/cmd/gogio", "-target", "android", "-appid", APPID, "-o", ANDROID_APK, ".")
}

// Clean up
func Clean() error {
	return sh.Run("rm", "-rf", WINDOWS_ARCHIVE, WINDOWS_BIN, LINUX_ARCHIVE, LINUX_BIN, ANDROID_APK)
}
