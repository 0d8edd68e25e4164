package common

import "os"

const ServiceName = "caseflow"

func GetServiceName() string {
	return ServiceName
}

func GetServiceInstance() string {
	hostname, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return hostname
}
