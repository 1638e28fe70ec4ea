package process

import "github.com/sirupsen/logrus"

var log = logrus.WithField("component", "process")
