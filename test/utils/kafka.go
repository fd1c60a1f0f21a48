package testutils

import (
	"bytes"
	"os/exec"
	"testing"
)

// CreateKafkaTopic creates a topic on the dockerized test broker. The suite
// is skipped when the broker container is not running.
func CreateKafkaTopic(t *testing.T, topic string) {
	t.Helper()

	cmd := exec.Command(
		"docker", "exec", "kafka",
		"kafka-topics", "--create",
		"--if-not-exists",
		"--topic", topic,
		"--bootstrap-server", "localhost:9092",
		"--replication-factor", "1",
		"--partitions", "1",
	)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		t.Skipf("Kafka unavailable (topic %s): %v\n%s", topic, err, out.String())
	}

	t.Logf("Topic %s ready", topic)
}
