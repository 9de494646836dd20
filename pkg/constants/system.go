package constants

// Environment variables read by the helper.
// OUT_DIR, DEP_UPB_* and GOPACKAGE are supplied by the surrounding build;
// the UPBGEN_* ones tune the helper itself.
const (
	EnvOutDir      = "OUT_DIR"
	EnvUpbVersion  = "DEP_UPB_VERSION"
	EnvUpbInclude  = "DEP_UPB_INCLUDE"
	EnvPackageName = "GOPACKAGE" // set by go generate

	EnvToolsDir   = "UPBGEN_TOOLS_DIR"
	EnvConfigPath = "UPBGEN_CONFIG"
	EnvLogLevel   = "UPBGEN_LOG_LEVEL"

	EnvCC     = "CC"
	EnvAR     = "AR"
	EnvCFlags = "CFLAGS"
	EnvPath   = "PATH"
)

// Generated artifact naming
const (
	GeneratedDirName   = "protobuf_generated" // appended to OUT_DIR
	DefaultSourceLang  = "upb"
	DefaultSourceExt   = "upb.h"
	MinitablePlugin    = "upb_minitable"
	MinitableExt       = "upb_minitable.c"
	LibrarySuffix      = "_upb_gen_code"
	ManifestFileName   = "upbgen.manifest.yml"
	DescriptorSetExt   = "pb"
	ObjectDirName      = "objs"
	DefaultCStandard   = "-std=c99"
	DefaultCompiler    = "cc"
	DefaultArchiver    = "ar"
	ProtocBinary       = "protoc"
	MinitableBinary    = "protoc-gen-upb_minitable"
	BundledToolsSubdir = "bin"
)

// File permissions and modes
const (
	DefaultFileMode = 0644 // Standard file permission for created files
	DefaultDirMode  = 0755 // Standard directory permission
)
