// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strconv"
	"strings"
)

// Instance statuses understood by the registry.
const (
	InstanceStatusUp   = "UP"
	InstanceStatusDown = "DOWN"
)

const defaultDataCenterClass = "com.netflix.appinfo.InstanceInfo$DefaultDataCenterInfo"

// Instance is the registration record of one running copy of a service.
type Instance struct {
	ID               string         `json:"instanceId"`
	HostName         string         `json:"hostName"`
	App              string         `json:"app"`
	IPAddr           string         `json:"ipAddr"`
	VIPAddress       string         `json:"vipAddress"`
	SecureVIPAddress string         `json:"secureVipAddress"`
	Status           string         `json:"status"`
	Port             Port           `json:"port"`
	SecurePort       Port           `json:"securePort"`
	HomePageURL      string         `json:"homePageUrl"`
	StatusPageURL    string         `json:"statusPageUrl"`
	HealthCheckURL   string         `json:"healthCheckUrl"`
	DataCenterInfo   DataCenterInfo `json:"dataCenterInfo"`
	LeaseInfo        LeaseInfo      `json:"leaseInfo"`
}

// Port is a port number with its enabled flag in the registry's
// {"$": 8080, "@enabled": "true"} shape.
type Port struct {
	Number  int    `json:"$"`
	Enabled string `json:"@enabled"`
}

// DataCenterInfo identifies where the instance runs.
type DataCenterInfo struct {
	Class string `json:"@class"`
	Name  string `json:"name"`
}

// LeaseInfo carries the lease timings in seconds.
type LeaseInfo struct {
	RenewalIntervalInSecs int `json:"renewalIntervalInSecs"`
	DurationInSecs        int `json:"durationInSecs"`
}

// InstanceRegistration wraps an Instance the way the registry expects it in a
// register request body.
type InstanceRegistration struct {
	Instance Instance `json:"instance"`
}

// NewInstance builds an UP instance of app reachable at ip:port. The health
// check URL points at the actuator health endpoint.
func NewInstance(app, ip string, port int, renewalSecs, durationSecs int) Instance {
	app = strings.ToUpper(app)
	base := "http://" + ip + ":" + strconv.Itoa(port)
	vip := strings.ToLower(app)

	return Instance{
		ID:               InstanceID(ip, vip, port),
		HostName:         ip,
		App:              app,
		IPAddr:           ip,
		VIPAddress:       vip,
		SecureVIPAddress: vip,
		Status:           InstanceStatusUp,
		Port:             Port{Number: port, Enabled: "true"},
		SecurePort:       Port{Number: 443, Enabled: "false"},
		HomePageURL:      base + "/",
		StatusPageURL:    base + "/actuator/info",
		HealthCheckURL:   base + "/actuator/health",
		DataCenterInfo:   DataCenterInfo{Class: defaultDataCenterClass, Name: "MyOwn"},
		LeaseInfo: LeaseInfo{
			RenewalIntervalInSecs: renewalSecs,
			DurationInSecs:        durationSecs,
		},
	}
}

// InstanceID returns the registry instance id "{ip}:{app}:{port}".
func InstanceID(ip, app string, port int) string {
	return ip + ":" + app + ":" + strconv.Itoa(port)
}
