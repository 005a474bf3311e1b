package ds

import (
	"fmt"
)

// Описание приложения. Выводится по флагу --version и попадает в лог при старте
type AppInfo struct {
	appName     string
	version     string
	buildTime   string
	buildOS     string
	buildCommit string
}

// Конструктор для AppInfo
func NewAppInfo() *AppInfo {
	return &AppInfo{
		appName: "tspan",
	}
}

// Опции для конструктора, используются для модификации полей структуры
func (i *AppInfo) WithVersion(version string) *AppInfo {
	i.version = version
	return i
}

func (i *AppInfo) WithBuildTime(buildTime string) *AppInfo {
	i.buildTime = buildTime
	return i
}

func (i *AppInfo) WithBuildOS(buildOS string) *AppInfo {
	i.buildOS = buildOS
	return i
}

func (i *AppInfo) WithBuildCommit(commit string) *AppInfo {
	i.buildCommit = commit
	return i
}

func (i *AppInfo) Name() string {
	return i.appName
}

func (i *AppInfo) Version() string {
	return i.version
}

// Полное описание сборки для --version
func (i *AppInfo) Build() string {
	return fmt.Sprintf("%s (BuildTime: %s, OS: %s)", i.String(), i.buildTime, i.buildOS)
}

// Строковое представление версии
func (i *AppInfo) String() string {
	return fmt.Sprintf("%s@%s (Commit: %s)", i.appName, i.version, i.buildCommit)
}
