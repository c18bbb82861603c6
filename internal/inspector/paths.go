package inspector

import "path/filepath"

// serverPath is the directory holding every framework's captures for one
// (vendor, server) pair: <root>/<vendor_id>/<server_api_reference>.
func serverPath(root, vendorID, serverAPIReference string) string {
	return filepath.Join(root, vendorID, serverAPIReference)
}

// frameworkPath is <server path>/<framework>, e.g. the dmidecode or
// nvidia-smi capture directory.
func frameworkPath(root, vendorID, serverAPIReference, framework string) string {
	return filepath.Join(serverPath(root, vendorID, serverAPIReference), framework)
}

func dmidecodeParsedPath(root, vendorID, serverAPIReference string) string {
	return filepath.Join(frameworkPath(root, vendorID, serverAPIReference, "dmidecode"), "parsed.json")
}

func lscpuPath(root, vendorID, serverAPIReference string) string {
	return filepath.Join(frameworkPath(root, vendorID, serverAPIReference, "lscpu"), "stdout")
}

func nvidiaSMIPath(root, vendorID, serverAPIReference string) string {
	return filepath.Join(frameworkPath(root, vendorID, serverAPIReference, "nvidia_smi"), "stdout")
}

// benchmarkStdoutPath, benchmarkMetaPath mirror inspector.py's
// _server_framework_path family: each benchmark framework run writes its own
// stdout/stderr/meta.json/parsed.json/results.json under its own directory.
func benchmarkStdoutPath(root, vendorID, serverAPIReference, framework string) string {
	return filepath.Join(frameworkPath(root, vendorID, serverAPIReference, framework), "stdout")
}

func benchmarkStderrPath(root, vendorID, serverAPIReference, framework string) string {
	return filepath.Join(frameworkPath(root, vendorID, serverAPIReference, framework), "stderr")
}

func benchmarkMetaPath(root, vendorID, serverAPIReference, framework string) string {
	return filepath.Join(frameworkPath(root, vendorID, serverAPIReference, framework), "meta.json")
}

func benchmarkParsedPath(root, vendorID, serverAPIReference, framework string) string {
	return filepath.Join(frameworkPath(root, vendorID, serverAPIReference, framework), "parsed.json")
}

func benchmarkResultsPath(root, vendorID, serverAPIReference, framework string) string {
	return filepath.Join(frameworkPath(root, vendorID, serverAPIReference, framework), "results.json")
}
