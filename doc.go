/*
Package diversify provides command line tools for preparing protein
family data: msaconvert converts multiple sequence alignments between
formats and optionally removes columns that are not consistently
uppercase, and mk-hmm builds one profile HMM per input alignment and
collects the models into a single HMMER file.

Both commands are small interfaces over existing libraries and programs:
alignment parsing and serialization is handled by the TuftsBCB io/msa
package, and profile-HMM construction and encoding is delegated to the
HMMER programs.
*/
package diversify
