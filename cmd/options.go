/*
Copyright © 2025 Matt Krueger <mkrueger@rstms.net>
All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

 1. Redistributions of source code must retain the above copyright notice,
    this list of conditions and the following disclaimer.

 2. Redistributions in binary form must reproduce the above copyright notice,
    this list of conditions and the following disclaimer in the documentation
    and/or other materials provided with the distribution.

 3. Neither the name of the copyright holder nor the names of its contributors
    may be used to endorse or promote products derived from this software
    without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE
ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE
LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR
CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF
SUBSTITUTE GOODS OR SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS
INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN
CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE)
ARISING IN ANY WAY OUT OF THE USE OF THIS SOFTWARE, EVEN IF ADVISED OF THE
POSSIBILITY OF SUCH DAMAGE.
*/
package cmd

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/rstms/hexd/hexdump"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func optionKey(name string) string {
	return "hexd." + strings.ReplaceAll(name, "-", "_")
}

func OptionString(cmd *cobra.Command, name, shorthand, value, usage string) {
	cmd.PersistentFlags().StringP(name, shorthand, value, usage)
	err := viper.BindPFlag(optionKey(name), cmd.PersistentFlags().Lookup(name))
	cobra.CheckErr(err)
}

func OptionSwitch(cmd *cobra.Command, name, shorthand, usage string) {
	cmd.PersistentFlags().BoolP(name, shorthand, false, usage)
	err := viper.BindPFlag(optionKey(name), cmd.PersistentFlags().Lookup(name))
	cobra.CheckErr(err)
}

func InitConfig() {
	cfgFile := viper.GetString(optionKey("config"))
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		configDir, err := os.UserConfigDir()
		cobra.CheckErr(err)
		viper.AddConfigPath(filepath.Join(configDir, "hexd"))
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()
	err := viper.ReadInConfig()
	if err != nil {
		_, notFound := err.(viper.ConfigFileNotFoundError)
		if cfgFile != "" || !notFound {
			cobra.CheckErr(err)
		}
	}
	hexdump.ViperInit("hexd")
	logfile := hexdump.ViperGetString("logfile")
	if logfile != "" {
		f, err := os.OpenFile(logfile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
		cobra.CheckErr(err)
		log.SetOutput(f)
	}
}
