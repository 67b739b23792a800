/*
Package ports defines the driven and driving ports of the submittals wizard.

These interfaces decouple the wizard core from storage backends and from the
hosts that present it.

# Key Interfaces

  - StateStore: keeps session State between host requests (memory or Redis).
  - BlobStore: keeps uploaded file contents referenced by answers.
  - DistributedLocker: serializes access to one session across replicas.
  - Wizard: the session-oriented API that hosts drive.
*/
package ports
