package config

// Base application details
const AppName = "ebb"
const ConfigDirName = "ebb"
const DefaultConfigFileName = "config.toml"
const DefaultLogFileName = "ebb.log"

// UI layout
const StatusBarHeight = 1

// Editor defaults
const DefaultTabWidth = 4
const DefaultScrollOff = 3
const DefaultSystemClipboard = false
